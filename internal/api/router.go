// Package api assembles the quicklist HTTP server: plain echo routes for the
// browser-facing OAuth round trip and probes, and huma operations under /api.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/quicklist/internal/api/handlers"
	"github.com/donaldgifford/quicklist/internal/api/middleware"
	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/store"
)

// Deps are the components the routes are served by.
type Deps struct {
	Store       store.Store
	Auth        handlers.Authorizer
	Policies    handlers.PolicyLister
	Pipeline    handlers.ListingCreator
	Limiter     *ebay.RateLimiter
	Analytics   handlers.UpstreamQuota
	States      *handlers.StateCache
	CORSOrigins []string
	Version     string
	Logger      *slog.Logger
}

// NewRouter returns the echo instance serving every quicklist route.
func NewRouter(d *Deps) *echo.Echo {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log), middleware.Recovery(log), middleware.Metrics())
	if len(d.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: d.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}

	health := handlers.NewHealthHandler(d.Store)
	e.GET("/health", health.Health)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig("quicklist API", d.Version)
	cfg.Info.Description = "Publishes scraped products as eBay listings and manages the seller OAuth credential."
	api := humaecho.New(e, cfg)

	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(d.Auth, d.States, log))
	handlers.RegisterPolicyRoutes(api, handlers.NewPoliciesHandler(d.Policies))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(d.Pipeline, d.Store))
	handlers.RegisterStoreRoutes(api, handlers.NewStoreHandler(d.Store))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.Limiter, d.Analytics))

	return e
}
