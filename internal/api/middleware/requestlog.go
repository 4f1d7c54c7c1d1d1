package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// healthPaths are logged on their first success and on every failure.
var healthPaths = map[string]struct{}{
	"/health": {},
	"/readyz": {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. 5xx responses log at ERROR and 4xx
// at WARN. Repeated successful health check requests are not logged.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		healthOK = map[string]bool{}
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status

			if _, health := healthPaths[path]; health && status < http.StatusBadRequest {
				mu.Lock()
				seen := healthOK[path]
				healthOK[path] = true
				mu.Unlock()
				if seen {
					return nil
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}

			log.Log(c.Request().Context(), level, "request", attrs...)
			return nil
		}
	}
}
