package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/quicklist/internal/metrics"
)

const (
	defaultAPIURL          = "https://api.ebay.com"
	defaultMarketplace     = "EBAY_DE"
	defaultContentLanguage = "de-DE"
)

var tracer = otel.Tracer("github.com/donaldgifford/quicklist/internal/ebay")

// Response is a raw Sell API answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// Payload returns the body as generic JSON, {"raw": text} when it is not
// JSON, or nil when it is empty.
func (r *Response) Payload() any {
	trimmed := bytes.TrimSpace(r.Body)
	if len(trimmed) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return map[string]any{"raw": string(r.Body)}
	}
	return v
}

// Err returns an *UpstreamError for operation when the response is not OK.
func (r *Response) Err(operation string) error {
	if r.OK() {
		return nil
	}
	return &UpstreamError{Operation: operation, StatusCode: r.StatusCode, Body: r.Payload()}
}

// SellClient issues authenticated calls to the eBay Sell APIs. Every call
// carries a bearer token from the TokenProvider and the marketplace header.
type SellClient struct {
	tokens          TokenProvider
	baseURL         string
	marketplace     string
	contentLanguage string
	client          *http.Client
	rateLimiter     *RateLimiter
	logger          *slog.Logger
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithBaseURL overrides the API host, e.g. the sandbox or a fake server.
func WithBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithMarketplace overrides the default marketplace id.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithContentLanguage overrides the Content-Language header.
func WithContentLanguage(lang string) SellOption {
	return func(c *SellClient) {
		c.contentLanguage = lang
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// WithSellLogger sets the logger.
func WithSellLogger(l *slog.Logger) SellOption {
	return func(c *SellClient) {
		c.logger = l
	}
}

// NewSellClient creates a new eBay Sell API client. The default transport is
// instrumented with OpenTelemetry.
func NewSellClient(tokens TokenProvider, opts ...SellOption) *SellClient {
	c := &SellClient{
		tokens:          tokens,
		baseURL:         defaultAPIURL,
		marketplace:     defaultMarketplace,
		contentLanguage: defaultContentLanguage,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Marketplace returns the marketplace id sent with every call.
func (c *SellClient) Marketplace() string {
	return c.marketplace
}

type marketplaceKey struct{}

// withMarketplace makes calls under ctx send id in the marketplace header
// instead of the configured default.
func withMarketplace(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, marketplaceKey{}, id)
}

func (c *SellClient) marketplaceFor(ctx context.Context) string {
	if id, ok := ctx.Value(marketplaceKey{}).(string); ok {
		return id
	}
	return c.marketplace
}

// Get issues a GET.
func (c *SellClient) Get(ctx context.Context, operation, path string) (*Response, error) {
	return c.Do(ctx, operation, http.MethodGet, path, nil)
}

// Put issues a PUT with a JSON body.
func (c *SellClient) Put(ctx context.Context, operation, path string, body any) (*Response, error) {
	return c.Do(ctx, operation, http.MethodPut, path, body)
}

// Post issues a POST with a JSON body.
func (c *SellClient) Post(ctx context.Context, operation, path string, body any) (*Response, error) {
	return c.Do(ctx, operation, http.MethodPost, path, body)
}

// Do sends one request and returns the status and body whatever the status.
// An error is returned only when no response was received or no token
// could be obtained.
func (c *SellClient) Do(ctx context.Context, operation, method, path string, body any) (*Response, error) {
	marketplace := c.marketplaceFor(ctx)
	ctx, span := tracer.Start(ctx, "ebay."+operation)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("ebay.marketplace", marketplace),
	)

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "no token")
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", marketplace)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Language", c.contentLanguage)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.EbayAPIDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EbayAPICallsTotal.WithLabelValues(operation, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return nil, fmt.Errorf("executing %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	metrics.EbayAPICallsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	out := &Response{StatusCode: resp.StatusCode, Body: raw}
	if !out.OK() {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		c.logger.Debug("ebay call returned non-success status",
			"operation", operation,
			"status", resp.StatusCode,
		)
	}
	return out, nil
}
