// Package root serves the greeting on the root path.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/ais-poc/greeter/internal/greeting"
	applog "github.com/ais-poc/greeter/internal/platform/logging"
)

// Register wires the greeting route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the greeting",
		Description: "Returns the capitalised greeting wrapped in green ANSI escape codes.",
		Tags:        []string{"Greeting"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "greeting", zap.String("path", "/"))
	return &Output{
		ContentType: ContentType,
		Body:        []byte(greeting.Body()),
	}, nil
}
