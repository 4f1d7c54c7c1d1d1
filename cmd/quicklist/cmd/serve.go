package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/quicklist/internal/api"
	"github.com/donaldgifford/quicklist/internal/api/handlers"
	"github.com/donaldgifford/quicklist/internal/config"
	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/pipeline"
	"github.com/donaldgifford/quicklist/internal/scheduler"
	"github.com/donaldgifford/quicklist/internal/store"
	"github.com/donaldgifford/quicklist/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and the token keep-alive",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("flushing traces failed", "error", err)
		}
	}()

	st, err := store.Open(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("preparing store: %w", err)
	}

	if !cfg.Ebay.OAuthConfigured() {
		log.Warn("ebay oauth is not configured; /auth and listing creation will fail")
	}

	upstream := &http.Client{
		Timeout:   cfg.Ebay.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	tokens := ebay.NewTokenManager(st, &cfg.Ebay,
		ebay.WithHTTPClient(upstream),
		ebay.WithTokenLogger(log.With("component", "token")),
	)
	limiter := ebay.NewRateLimiter(cfg.Ebay.RateLimit.PerSecond, cfg.Ebay.RateLimit.Burst, cfg.Ebay.RateLimit.DailyLimit)
	sell := ebay.NewSellClient(tokens,
		ebay.WithBaseURL(cfg.Ebay.APIURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithContentLanguage(cfg.Ebay.ContentLanguage),
		ebay.WithSellHTTPClient(upstream),
		ebay.WithRateLimiter(limiter),
		ebay.WithSellLogger(log.With("component", "sell")),
	)
	policies := ebay.NewPolicyResolver(sell, sell, cfg.Ebay.Marketplace,
		ebay.WithPolicyLogger(log.With("component", "policy")),
	)
	pipe := pipeline.New(sell, policies, st,
		pipeline.WithLogger(log.With("component", "pipeline")),
		pipeline.WithSKUPrefix(cfg.Listing.SKUPrefix),
		pipeline.WithMarketplace(cfg.Ebay.Marketplace),
		pipeline.WithDefaultCurrency(cfg.Ebay.Currency),
		pipeline.WithDefaultDuration(cfg.Listing.ListingDuration),
	)

	analytics := ebay.NewAnalyticsClient(sell)
	if cfg.Ebay.OAuthConfigured() && cfg.Ebay.RateLimit.DailyLimit > 0 {
		go seedQuota(ctx, analytics, limiter, log)
	}

	if cfg.KeepAlive.Enabled {
		sched, err := startKeepAlive(ctx, tokens, &cfg.KeepAlive, log)
		if err != nil {
			return err
		}
		defer sched.Stop()
	}

	e := api.NewRouter(&api.Deps{
		Store:       st,
		Auth:        tokens,
		Policies:    policies,
		Pipeline:    pipe,
		Limiter:     limiter,
		Analytics:   analytics,
		States:      handlers.NewStateCache(0),
		CORSOrigins: cfg.Server.CORSOrigins,
		Version:     Version,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           otelhttp.NewHandler(e, "quicklist"),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "store", cfg.Store.Driver, "marketplace", cfg.Ebay.Marketplace)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func startKeepAlive(
	ctx context.Context,
	tokens *ebay.TokenManager,
	cfg *config.KeepAliveConfig,
	log *slog.Logger,
) (*scheduler.Scheduler, error) {
	sched, err := scheduler.NewScheduler(tokens, cfg.Interval, log.With("component", "keepalive"))
	if err != nil {
		return nil, fmt.Errorf("creating keep-alive scheduler: %w", err)
	}
	sched.Start()

	// A credential that expired while the server was down is renewed now.
	go sched.RunOnce(ctx)

	log.Info("token keep-alive enabled", "interval", cfg.Interval)
	return sched, nil
}

// seedQuota carries eBay's count of today's Sell Inventory calls into the
// local budget.
func seedQuota(ctx context.Context, analytics *ebay.AnalyticsClient, limiter *ebay.RateLimiter, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	states, err := analytics.GetInventoryQuota(ctx)
	if err != nil {
		if errors.Is(err, ebay.ErrAuthRequired) {
			log.Debug("skipping quota sync, seller not authorized")
			return
		}
		log.Warn("quota sync failed", "error", err)
		return
	}

	for _, q := range states {
		if q.Resource == "sell.inventory" {
			limiter.Seed(q.Count, q.ResetAt)
			log.Info("daily budget synced with ebay", "used", q.Count, "reset_at", q.ResetAt)
			return
		}
	}
}
