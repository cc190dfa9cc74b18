// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultPort is the port the greeter listens on when PORT is unset.
const DefaultPort = 3000

// bannerHost is the host advertised in the startup banner. It is fixed; the
// server always binds on all interfaces.
const bannerHost = "localhost"

// Config holds the runtime settings of the server.
type Config struct {
	Port int `validate:"min=1,max=65535"`
}

// Addr returns the listen address, bound on all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// URL returns the address advertised in the startup banner.
func (c Config) URL() string {
	return "http://" + bannerHost + ":" + strconv.Itoa(c.Port)
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{Port: DefaultPort}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads an optional .env file from the working directory, applies a PORT
// override on top of Default and validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
