package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ais-poc/greeter/internal/config"
	"github.com/ais-poc/greeter/internal/greeting"
	"github.com/ais-poc/greeter/internal/http/routes"
)

func TestVersionVariable(t *testing.T) {
	if Version != "dev" {
		t.Errorf("expected default Version 'dev', got %q", Version)
	}
}

func TestVersionCommand(t *testing.T) {
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != Version {
		t.Fatalf("expected %q, got %q", Version, got)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"unexpected"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestServeFailsWhenPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	defer func() { _ = ln.Close() }()
	port := ln.Addr().(*net.TCPAddr).Port

	err = serve(context.Background(), config.Config{Port: port})
	if err == nil {
		t.Fatal("expected bind error")
	}
	if !strings.Contains(err.Error(), "address already in use") {
		t.Fatalf("expected address already in use, got %v", err)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, config.Config{Port: 0}) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for shutdown")
	}
}

func TestHandlerEndToEnd(t *testing.T) {
	srv := httptest.NewServer(routes.NewHandler(Version))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if body.String() != greeting.Body() {
		t.Fatalf("unexpected body %q", body.String())
	}

	missing, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing failed: %v", err)
	}
	_ = missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}
