package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"

	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/web"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const defaultStateTTL = 10 * time.Minute

// Authorizer runs the seller consent flow and reports the credential state.
type Authorizer interface {
	Configured() bool
	AuthCodeURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (*domain.Credential, error)
	Status(ctx context.Context) (*ebay.TokenStatus, error)
}

// StateCache remembers the OAuth state values handed out by /auth until the
// consent page redirects back, or until they expire.
type StateCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	states  map[string]time.Time
	nowFunc func() time.Time
}

// NewStateCache creates a StateCache. A non-positive ttl uses ten minutes.
func NewStateCache(ttl time.Duration) *StateCache {
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	return &StateCache{
		ttl:     ttl,
		states:  make(map[string]time.Time),
		nowFunc: time.Now,
	}
}

// Issue returns a new random state.
func (s *StateCache) Issue() string {
	state := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	for k, exp := range s.states {
		if now.After(exp) {
			delete(s.states, k)
		}
	}
	s.states[state] = now.Add(s.ttl)
	return state
}

// Consume reports whether state was issued and has not expired. A state can
// be consumed once.
func (s *StateCache) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return !s.nowFunc().After(exp)
}

// AuthHandler serves the OAuth consent round trip and the token status.
type AuthHandler struct {
	auth   Authorizer
	states *StateCache
	log    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authorizer, states *StateCache, log *slog.Logger) *AuthHandler {
	if states == nil {
		states = NewStateCache(0)
	}
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{auth: auth, states: states, log: log}
}

// Auth redirects the seller to the eBay consent page.
func (h *AuthHandler) Auth(c echo.Context) error {
	if !h.auth.Configured() {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "ebay client id, client secret and redirect uri must be configured",
		})
	}

	u, err := h.auth.AuthCodeURL(h.states.Issue())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.Redirect(http.StatusFound, u)
}

// Callback exchanges the authorization code eBay redirected back with and
// renders the outcome.
func (h *AuthHandler) Callback(c echo.Context) error {
	if reason := c.QueryParam("error"); reason != "" {
		h.log.Warn("ebay consent declined", "reason", reason)
		return render(c, http.StatusBadRequest, web.AuthFailure("eBay reported: "+reason))
	}

	code := c.QueryParam("code")
	if code == "" {
		return render(c, http.StatusBadRequest, web.AuthFailure("The callback carried no authorization code."))
	}

	if state := c.QueryParam("state"); state != "" && !h.states.Consume(state) {
		return render(c, http.StatusBadRequest, web.AuthFailure("The authorization request is unknown or expired."))
	}

	cred, err := h.auth.Exchange(c.Request().Context(), code)
	if err != nil {
		h.log.Error("authorization code exchange failed", "error", err)

		var re *oauth2.RetrieveError
		switch {
		case errors.Is(err, ebay.ErrOAuthNotConfigured):
			return render(c, http.StatusInternalServerError, web.AuthFailure("OAuth is not configured on this server."))
		case errors.As(err, &re):
			return render(c, http.StatusBadRequest, web.AuthFailure("eBay rejected the authorization code."))
		default:
			return render(c, http.StatusBadGateway, web.AuthFailure("Could not reach eBay to complete the authorization."))
		}
	}

	return render(c, http.StatusOK, web.AuthSuccess(cred.ExpiresAt))
}

func render(c echo.Context, status int, page templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Render(c.Request().Context(), c.Response())
}

// AuthStatusOutput is the response body for the token status endpoint.
type AuthStatusOutput struct {
	Body struct {
		Configured bool `json:"configured" doc:"Whether the OAuth client is configured"`
		ebay.TokenStatus
	}
}

// GetAuthStatus reports the credential lifecycle state.
func (h *AuthHandler) GetAuthStatus(ctx context.Context, _ *struct{}) (*AuthStatusOutput, error) {
	st, err := h.auth.Status(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("reading credential failed", err)
	}

	resp := &AuthStatusOutput{}
	resp.Body.Configured = h.auth.Configured()
	resp.Body.TokenStatus = *st
	return resp, nil
}

// RegisterAuthRoutes registers the consent flow on e and the status
// operation on api.
func RegisterAuthRoutes(e *echo.Echo, api huma.API, h *AuthHandler) {
	e.GET("/auth", h.Auth)
	e.GET("/callback", h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "get-auth-status",
		Method:      http.MethodGet,
		Path:        "/api/auth/status",
		Summary:     "Get credential status",
		Description: "Returns the OAuth credential state and expiry without contacting eBay.",
		Tags:        []string{"auth"},
	}, h.GetAuthStatus)
}
