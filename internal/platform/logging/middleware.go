package logging

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger enriches the request context with a logger carrying the
// request ID and any W3C trace context sent by the client.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimiddleware.GetReqID(r.Context())
			correlationID := reqID

			var fields []zap.Field
			if tc, ok := parseTraceparent(r.Header.Get(traceparentHeader)); ok {
				fields = tc.fields()
				correlationID = tc.traceID
			}
			if reqID != "" {
				fields = append(fields, zap.String("requestId", reqID))
			}

			logger := Logger()
			if len(fields) > 0 {
				logger = logger.With(fields...)
			}
			ctx := contextWithCorrelationID(r.Context(), correlationID)
			ctx = ContextWithLogger(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLogger writes one structured summary per request using the request-scoped logger.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remoteIp", r.RemoteAddr),
				zap.String("userAgent", r.UserAgent()),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if id := CorrelationIDFromContext(r.Context()); id != "" {
				fields = append(fields, zap.String("correlationId", id))
			}
			LoggerFromContext(r.Context()).Info("request completed", fields...)
		})
	}
}
