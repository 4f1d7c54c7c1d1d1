// Package middleware provides Echo middleware for the quicklist server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/quicklist/internal/metrics"
)

// Paths excluded from request histograms and counters.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
	"/readyz":  {},
}

// Metrics returns Echo middleware that records request duration and status
// per route template. Probe and scrape paths only update the up gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if _, skip := metricsSkipPaths[path]; skip {
				err := next(c)
				updateProbeGauge(path, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}

			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

func updateProbeGauge(path string, status int) {
	up := 0.0
	if status >= 200 && status < 300 {
		up = 1
	}

	switch path {
	case "/health":
		metrics.HealthUp.Set(up)
	case "/readyz":
		metrics.ReadyzUp.Set(up)
	}
}
