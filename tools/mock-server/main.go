// Package main runs a stateful mock of the eBay Sell and OAuth APIs for local
// development, so the server and the extension can be exercised without a
// seller account.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/quicklist/internal/ebay/ebaytest"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixtures", "", "JSON file with policies and locations (default: built-in set)")
	failures := flag.String("fail", "", "comma separated operation=status pairs, e.g. create_offer=400")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixtures, err := loadFixtures(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixtures", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures",
		"payment_policies", len(fixtures.PaymentPolicies),
		"return_policies", len(fixtures.ReturnPolicies),
		"fulfillment_policies", len(fixtures.FulfillmentPolicies),
		"locations", len(fixtures.Locations),
	)

	fake := ebaytest.New(fixtures)
	forced, err := parseFailures(*failures)
	if err != nil {
		logger.Error("invalid -fail flag", "error", err)
		os.Exit(1)
	}
	for op, status := range forced {
		fake.FailOperation(op, status)
		logger.Info("forcing failure", "operation", op, "status", status)
	}

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newHandler(logger, fake),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newHandler(logger *slog.Logger, fake *ebaytest.Fake) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", fake.Handler())
	mux.HandleFunc("GET /oauth2/authorize", consentHandler(logger))
	return requestLogger(logger, mux)
}

// consentHandler approves every consent request by redirecting straight back
// to redirect_uri with a code the fake token endpoint accepts.
func consentHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		redirect := q.Get("redirect_uri")
		if redirect == "" {
			http.Error(w, "redirect_uri is required", http.StatusBadRequest)
			return
		}
		target, err := url.Parse(redirect)
		if err != nil {
			http.Error(w, "invalid redirect_uri", http.StatusBadRequest)
			return
		}
		back := target.Query()
		back.Set("code", "good-code")
		if state := q.Get("state"); state != "" {
			back.Set("state", state)
		}
		target.RawQuery = back.Encode()
		logger.Info("consent granted", "redirect", redirect)
		http.Redirect(w, r, target.String(), http.StatusFound)
	}
}

func loadFixtures(path string) (ebaytest.Fixtures, error) {
	if path == "" {
		return ebaytest.DefaultFixtures(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return ebaytest.Fixtures{}, fmt.Errorf("reading fixtures: %w", err)
	}
	var f ebaytest.Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return ebaytest.Fixtures{}, fmt.Errorf("parsing fixtures: %w", err)
	}
	return f, nil
}

func parseFailures(s string) (map[string]int, error) {
	out := map[string]int{}
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		op, code, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || op == "" {
			return nil, fmt.Errorf("expected operation=status, got %q", pair)
		}
		status, err := strconv.Atoi(code)
		if err != nil || status < 100 || status > 599 {
			return nil, fmt.Errorf("invalid status in %q", pair)
		}
		out[op] = status
	}
	return out, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}
