// Package routes assembles the HTTP handler: middleware stack, Huma API and routes.
package routes

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ais-poc/greeter/internal/http/root"
	applog "github.com/ais-poc/greeter/internal/platform/logging"
	appmiddleware "github.com/ais-poc/greeter/internal/platform/middleware"
	"github.com/ais-poc/greeter/internal/platform/respond"
)

// Title is the API title reported in the OpenAPI document.
const Title = "AIS Greeter"

// Register wires all routes into the provided API.
func Register(api huma.API) {
	root.Register(api)
}

// NewConfig returns the Huma configuration. The OpenAPI, docs and schema
// routes are disabled so that "/" is the only path the service answers.
func NewConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	return cfg
}

// NewHandler builds the router with the base middleware stack and all routes.
func NewHandler(version string) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	// Unknown methods on known paths are reported as 404, not 405.
	router.MethodNotAllowed(respond.NotFoundHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; deploy behind a trusted proxy only.
		chimiddleware.RealIP,
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
		chimiddleware.GetHead,
	)

	api := humachi.New(router, NewConfig(version))
	Register(api)
	return router
}
