// Package server runs the HTTP listener and prints the startup banner.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ais-poc/greeter/internal/config"
	"github.com/ais-poc/greeter/internal/platform/colorize"
	applog "github.com/ais-poc/greeter/internal/platform/logging"
)

// ShutdownTimeout bounds graceful shutdown once the serve context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Server owns the listening socket and the http.Server serving the handler.
type Server struct {
	cfg     config.Config
	srv     *http.Server
	console *zap.Logger
	ln      net.Listener
}

// Option customises a Server.
type Option func(*Server)

// WithConsole sets the logger that prints the startup banner.
func WithConsole(console *zap.Logger) Option {
	return func(s *Server) { s.console = console }
}

// New returns a stopped Server for handler.
func New(cfg config.Config, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    64 << 10,
		},
		console: applog.Console(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Banner is the console line printed once the listener is bound.
func Banner(cfg config.Config) string {
	return "Server is running at " + cfg.URL()
}

// Listen binds the TCP listener. A port already in use surfaces here, before
// anything is printed.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve prints the banner and serves until ctx is cancelled, then shuts down
// gracefully. Listen is called first if it has not been already.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	applog.LogInfo(ctx, "server listening", zap.String("addr", s.ln.Addr().String()))
	s.console.Info(colorize.Blue(Banner(s.cfg)))

	serveErr := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
