// Package handlers implements HTTP handlers for the quicklist API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store   Pinger
	nowFunc func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s Pinger) *HealthHandler {
	return &HealthHandler{store: s, nowFunc: time.Now}
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

// Health returns 200 while the process is running.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true, Time: h.nowFunc().UTC()})
}

// Readyz returns 200 if the store is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			StatusResponse{Status: "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
