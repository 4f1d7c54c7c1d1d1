// Package ebaytest provides an in-memory fake of the eBay OAuth token endpoint
// and the Sell Inventory and Account APIs used by quicklist. It backs package
// tests and the local mock server.
package ebaytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// Call is one request received by the fake.
type Call struct {
	Method string
	Path   string
	Body   []byte
}

// Fixtures seed the account data the fake serves.
type Fixtures struct {
	PaymentPolicies     []domain.Policy   `json:"payment_policies"`
	ReturnPolicies      []domain.Policy   `json:"return_policies"`
	FulfillmentPolicies []domain.Policy   `json:"fulfillment_policies"`
	Locations           []domain.Location `json:"locations"`
}

// DefaultFixtures has one policy of each kind and one enabled location.
func DefaultFixtures() Fixtures {
	return Fixtures{
		PaymentPolicies: []domain.Policy{
			{ID: "pay-1", Name: "PayPal and cards", Kind: domain.PolicyPayment},
			{ID: "pay-2", Name: "Bank transfer", Kind: domain.PolicyPayment},
		},
		ReturnPolicies: []domain.Policy{
			{ID: "ret-1", Name: "30 day returns", Kind: domain.PolicyReturn},
		},
		FulfillmentPolicies: []domain.Policy{
			{ID: "ful-1", Name: "DHL Paket", Kind: domain.PolicyFulfillment},
		},
		Locations: []domain.Location{
			{MerchantLocationKey: "warehouse-1", Name: "Main warehouse", Status: "ENABLED"},
		},
	}
}

// Fake is a stateful eBay API double. The zero value is not usable; use New.
type Fake struct {
	// ExpiresIn is returned by the token endpoint, in seconds.
	ExpiresIn int
	// RotateRefreshToken makes refresh grants return a new refresh token.
	RotateRefreshToken bool

	mu          sync.Mutex
	fixtures    Fixtures
	inventory   map[string]json.RawMessage
	offersBySKU map[string]string
	offers      map[string]string // offer id -> sku
	published   map[string]string // offer id -> listing id
	revoked     map[string]bool
	failures    map[string]int // operation -> forced status
	calls       []Call

	tokenCalls   atomic.Int64
	offerSeq     atomic.Int64
	tokenSeq     atomic.Int64
	tokenBlocker chan struct{}
}

// New returns a Fake serving fixtures.
func New(fixtures Fixtures) *Fake {
	return &Fake{
		ExpiresIn:   7200,
		fixtures:    fixtures,
		inventory:   map[string]json.RawMessage{},
		offersBySKU: map[string]string{},
		offers:      map[string]string{},
		published:   map[string]string{},
		revoked:     map[string]bool{},
		failures:    map[string]int{},
	}
}

// NewServer starts the fake with DefaultFixtures on an httptest server that
// is closed when the test ends.
func NewServer(t testing.TB) (*Fake, *httptest.Server) {
	t.Helper()
	f := New(DefaultFixtures())
	srv := httptest.NewServer(f.Handler())
	t.Cleanup(srv.Close)
	return f, srv
}

// Handler returns the fake's routes.
func (f *Fake) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", f.token)
	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", f.sell("create_inventory_item", f.upsertItem))
	mux.HandleFunc("POST /sell/inventory/v1/offer", f.sell("create_offer", f.createOffer))
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/publish", f.sell("publish_offer", f.publishOffer))
	mux.HandleFunc("GET /sell/inventory/v1/location", f.sell("list_locations", f.listLocations))
	mux.HandleFunc("GET /sell/account/v1/payment_policy", f.sell("list_payment_policies", f.listPolicies(domain.PolicyPayment)))
	mux.HandleFunc("GET /sell/account/v1/return_policy", f.sell("list_return_policies", f.listPolicies(domain.PolicyReturn)))
	mux.HandleFunc("GET /sell/account/v1/fulfillment_policy", f.sell("list_fulfillment_policies", f.listPolicies(domain.PolicyFulfillment)))
	mux.HandleFunc("GET /developer/analytics/v1_beta/user_rate_limit/", f.sell("get_user_rate_limits", f.rateLimits))
	return mux
}

// FailOperation forces every later call of operation to answer status.
func (f *Fake) FailOperation(operation string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[operation] = status
}

// RevokeRefreshToken makes refresh grants with token fail with invalid_grant.
func (f *Fake) RevokeRefreshToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = true
}

// BlockTokens holds every token request until the returned func is called.
func (f *Fake) BlockTokens() (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.tokenBlocker = ch
	f.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// TokenCalls returns the number of token endpoint requests.
func (f *Fake) TokenCalls() int {
	return int(f.tokenCalls.Load())
}

// Calls returns the Sell API requests received so far.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns how many Sell API requests matched method and path prefix.
func (f *Fake) CallCount(method, pathPrefix string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && strings.HasPrefix(c.Path, pathPrefix) {
			n++
		}
	}
	return n
}

// InventoryItem returns the stored payload for sku.
func (f *Fake) InventoryItem(sku string) (json.RawMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.inventory[sku]
	return item, ok
}

// Published reports whether offerID was published.
func (f *Fake) Published(offerID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.published[offerID]
	return ok
}

func (f *Fake) token(w http.ResponseWriter, r *http.Request) {
	f.tokenCalls.Add(1)

	f.mu.Lock()
	blocker := f.tokenBlocker
	f.mu.Unlock()
	if blocker != nil {
		<-blocker
	}

	if _, _, ok := r.BasicAuth(); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	n := f.tokenSeq.Add(1)
	resp := map[string]any{
		"access_token": fmt.Sprintf("access-%d", n),
		"expires_in":   f.ExpiresIn,
		"token_type":   "User Access Token",
	}

	switch r.PostForm.Get("grant_type") {
	case "authorization_code":
		if r.PostForm.Get("code") == "" || r.PostForm.Get("code") == "bad-code" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization grant code is invalid or was issued to another client",
			})
			return
		}
		resp["refresh_token"] = fmt.Sprintf("refresh-%d", n)
		resp["refresh_token_expires_in"] = 47304000
	case "refresh_token":
		rt := r.PostForm.Get("refresh_token")
		f.mu.Lock()
		revoked := f.revoked[rt]
		f.mu.Unlock()
		if rt == "" || revoked {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization refresh token is invalid or was issued to another client",
			})
			return
		}
		if f.RotateRefreshToken {
			resp["refresh_token"] = fmt.Sprintf("refresh-%d", n)
		}
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// sell wraps a Sell API route with bearer checks, call recording and forced
// failures.
func (f *Fake) sell(operation string, next func(http.ResponseWriter, *http.Request, []byte)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			dec := json.NewDecoder(r.Body)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err == nil {
				body = raw
			}
		}

		f.mu.Lock()
		f.calls = append(f.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body})
		forced := f.failures[operation]
		f.mu.Unlock()

		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}
		if forced != 0 {
			writeError(w, forced, 25001, "A system error has occurred.")
			return
		}
		next(w, r, body)
	}
}

func (f *Fake) upsertItem(w http.ResponseWriter, r *http.Request, body []byte) {
	sku := r.PathValue("sku")
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, 25709, "Invalid value for product.")
		return
	}

	f.mu.Lock()
	f.inventory[sku] = body
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *Fake) createOffer(w http.ResponseWriter, _ *http.Request, body []byte) {
	var req struct {
		SKU string `json:"sku"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.SKU == "" {
		writeError(w, http.StatusBadRequest, 25702, "The SKU is missing.")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.inventory[req.SKU]; !ok {
		writeError(w, http.StatusBadRequest, 25702, "No inventory item exists for SKU "+req.SKU)
		return
	}
	if _, dup := f.offersBySKU[req.SKU]; dup {
		writeError(w, http.StatusBadRequest, 25002, "Offer entity already exists.")
		return
	}

	id := fmt.Sprintf("%d", 5000000000+f.offerSeq.Add(1))
	f.offersBySKU[req.SKU] = id
	f.offers[id] = req.SKU

	writeJSON(w, http.StatusCreated, map[string]string{"offerId": id})
}

func (f *Fake) publishOffer(w http.ResponseWriter, r *http.Request, _ []byte) {
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.offers[id]; !ok {
		writeError(w, http.StatusNotFound, 25713, "This Offer is not available.")
		return
	}
	listingID := "11" + id
	f.published[id] = listingID

	writeJSON(w, http.StatusOK, map[string]any{"listingId": listingID, "warnings": []any{}})
}

// InventoryDailyLimit is the sell.inventory quota the fake reports.
const InventoryDailyLimit = 2000000

// rateLimits reports every Sell Inventory call received before this one.
func (f *Fake) rateLimits(w http.ResponseWriter, r *http.Request, _ []byte) {
	if !strings.EqualFold(r.URL.Query().Get("api_context"), "sell") {
		writeJSON(w, http.StatusOK, map[string]any{"rateLimits": []any{}})
		return
	}

	var count int64
	for _, c := range f.Calls() {
		if strings.HasPrefix(c.Path, "/sell/") {
			count++
		}
	}
	reset := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)

	writeJSON(w, http.StatusOK, map[string]any{
		"rateLimits": []map[string]any{{
			"apiContext": "sell",
			"apiName":    "Inventory",
			"apiVersion": "v1",
			"resources": []map[string]any{{
				"name": "sell.inventory",
				"rates": []map[string]any{{
					"count":      count,
					"limit":      InventoryDailyLimit,
					"remaining":  InventoryDailyLimit - count,
					"reset":      reset.Format(time.RFC3339),
					"timeWindow": 86400,
				}},
			}},
		}},
	})
}

func (f *Fake) listLocations(w http.ResponseWriter, _ *http.Request, _ []byte) {
	f.mu.Lock()
	locs := append([]domain.Location{}, f.fixtures.Locations...)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"locations": locs, "total": len(locs)})
}

func (f *Fake) listPolicies(kind domain.PolicyKind) func(http.ResponseWriter, *http.Request, []byte) {
	return func(w http.ResponseWriter, r *http.Request, _ []byte) {
		marketplace := r.URL.Query().Get("marketplace_id")
		if marketplace == "" {
			writeError(w, http.StatusBadRequest, 20401, "Missing field marketplaceId.")
			return
		}

		f.mu.Lock()
		var src []domain.Policy
		switch kind {
		case domain.PolicyPayment:
			src = f.fixtures.PaymentPolicies
		case domain.PolicyReturn:
			src = f.fixtures.ReturnPolicies
		case domain.PolicyFulfillment:
			src = f.fixtures.FulfillmentPolicies
		}
		f.mu.Unlock()

		idField := string(kind) + "PolicyId"
		entries := make([]map[string]string, 0, len(src))
		for _, p := range src {
			entries = append(entries, map[string]string{
				idField:         p.ID,
				"name":          p.Name,
				"marketplaceId": marketplace,
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{
			string(kind) + "Policies": entries,
			"total":                   len(entries),
		})
	}
}

func writeError(w http.ResponseWriter, status, errorID int, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{
			"errorId":  errorID,
			"domain":   "API_INVENTORY",
			"category": "REQUEST",
			"message":  message,
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in fake server
	json.NewEncoder(w).Encode(v)
}
