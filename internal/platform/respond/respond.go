// Package respond renders router-level error responses as RFC 9457 problem details.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/negotiation"
	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	applog "github.com/ais-poc/greeter/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// acceptable lists the media types a problem can be rendered as.
var acceptable = []string{
	"application/json",
	contentTypeProblemJSON,
	"application/cbor",
	contentTypeProblemCBOR,
}

// NotFoundHandler answers unmatched routes with a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, msgNotFound, nil)
	}
}

// Recoverer converts handler panics into 500 problems. Panics with
// http.ErrAbortHandler are re-raised so net/http can abort the connection,
// and nothing is written when the handler already sent its headers.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err)
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr, err)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteProblem logs the failure and writes a problem document for status,
// encoded as CBOR when the client prefers it and JSON otherwise.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string, cause error) {
	logProblem(r, status, detail, cause)

	problem := &huma.ErrorModel{
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}

	contentType := contentTypeProblemJSON
	var (
		body []byte
		err  error
	)
	if prefersCBOR(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(problem)
	} else {
		body, err = json.Marshal(problem)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err)
		http.Error(w, detail, status)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err))
	}
}

func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	switch negotiation.SelectQValueFast(accept, acceptable) {
	case "application/cbor", contentTypeProblemCBOR:
		return true
	default:
		return false
	}
}

func logProblem(r *http.Request, status int, detail string, cause error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if status >= http.StatusInternalServerError {
		applog.LogError(r.Context(), detail, cause, fields...)
		return
	}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	applog.LogWarn(r.Context(), detail, fields...)
}

// responseWriter records whether the status line has been sent.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
