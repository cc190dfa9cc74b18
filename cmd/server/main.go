package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ais-poc/greeter/internal/config"
	"github.com/ais-poc/greeter/internal/http/routes"
	applog "github.com/ais-poc/greeter/internal/platform/logging"
	"github.com/ais-poc/greeter/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		applog.LogError(ctx, "server failed", err)
		return err
	}
	return nil
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "greeter",
		Short:         "Serve the AIS proof-of-concept greeting on GET /",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	})
	return root
}

func serve(ctx context.Context, cfg config.Config) error {
	srv := server.New(cfg, routes.NewHandler(Version))
	if err := srv.Listen(); err != nil {
		return err
	}
	applog.LogInfo(ctx, "starting", zap.String("version", Version), zap.Int("port", cfg.Port))
	return srv.Serve(ctx)
}
