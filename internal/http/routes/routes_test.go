package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ais-poc/greeter/internal/greeting"
)

func TestRegisterAddsOnlyRootOperation(t *testing.T) {
	api := humachi.New(chi.NewRouter(), NewConfig("test"))
	Register(api)

	paths := api.OpenAPI().Paths
	if len(paths) != 1 {
		t.Fatalf("expected exactly one path, got %d", len(paths))
	}
	item, ok := paths["/"]
	if !ok || item.Get == nil {
		t.Fatal("expected GET / to be registered")
	}
	if item.Get.OperationID != "get-greeting" {
		t.Fatalf("unexpected operation ID %q", item.Get.OperationID)
	}
}

func TestHandlerServesGreeting(t *testing.T) {
	h := NewHandler("test")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-root")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != greeting.Body() {
		t.Fatalf("unexpected body %q", body)
	}
	if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != "routes-root" {
		t.Fatalf("expected request ID to be echoed, got %q", got)
	}
	if got := resp.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected security headers, got X-Content-Type-Options %q", got)
	}
}

func TestHandlerNotFound(t *testing.T) {
	h := NewHandler("test")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"missing path", http.MethodGet, "/missing"},
		{"openapi disabled", http.MethodGet, "/openapi.json"},
		{"docs disabled", http.MethodGet, "/docs"},
		{"post root", http.MethodPost, "/"},
		{"delete root", http.MethodDelete, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			h.ServeHTTP(resp, httptest.NewRequest(tt.method, tt.path, nil))

			if resp.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", resp.Code)
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("expected application/problem+json, got %q", ct)
			}
			var problem huma.ErrorModel
			if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
				t.Fatalf("failed to unmarshal problem: %v", err)
			}
			if problem.Status != http.StatusNotFound {
				t.Fatalf("expected status 404 in body, got %d", problem.Status)
			}
		})
	}
}

func TestHandlerHeadRoot(t *testing.T) {
	h := NewHandler("test")

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodHead, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for HEAD /, got %d", resp.Code)
	}
}
