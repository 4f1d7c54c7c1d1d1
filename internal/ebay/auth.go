package ebay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/quicklist/internal/config"
	"github.com/donaldgifford/quicklist/internal/metrics"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const (
	defaultRefreshSkew = 60 * time.Second
	defaultExpiresIn   = 7200 * time.Second
	refreshFlightKey   = "refresh"
	forceFlightKey     = "force"
)

// CredentialStore is the slice of the store the TokenManager needs.
type CredentialStore interface {
	GetCredential(ctx context.Context) (*domain.Credential, error)
	SaveCredential(ctx context.Context, c *domain.Credential) error
}

// TokenState is the lifecycle state of the seller credential.
type TokenState string

// Token states reported by TokenManager.Status.
const (
	StateUnauthenticated TokenState = "unauthenticated"
	StateAuthorized      TokenState = "authorized"
	StateExpired         TokenState = "expired" // refreshable on next use
	StateRefreshing      TokenState = "refreshing"
	StateAuthRequired    TokenState = "auth_required"
)

// TokenStatus is a redacted view of the credential.
type TokenStatus struct {
	State           TokenState `json:"state"`
	ExpiresAt       time.Time  `json:"expires_at,omitzero"`
	HasRefreshToken bool       `json:"has_refresh_token"`
	UpdatedAt       time.Time  `json:"updated_at,omitzero"`
}

// TokenManager hands out a valid user access token, refreshing the stored
// credential when it is about to expire. Concurrent callers that see an
// expired token share a single refresh grant. It implements TokenProvider.
type TokenManager struct {
	store   CredentialStore
	oauth   *oauth2.Config
	client  *http.Client
	skew    time.Duration
	nowFunc func() time.Time
	logger  *slog.Logger

	group        singleflight.Group
	grantMu      sync.Mutex
	refreshing   atomic.Int32
	authRequired atomic.Bool
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithHTTPClient overrides the HTTP client used for token grants.
func WithHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// WithRefreshSkew sets how long before expiry a token stops being handed out.
func WithRefreshSkew(d time.Duration) TokenOption {
	return func(m *TokenManager) {
		m.skew = d
	}
}

// WithTokenLogger sets the logger.
func WithTokenLogger(l *slog.Logger) TokenOption {
	return func(m *TokenManager) {
		m.logger = l
	}
}

// NewTokenManager creates a TokenManager backed by store and configured from
// the ebay section of the config.
func NewTokenManager(store CredentialStore, cfg *config.EbayConfig, opts ...TokenOption) *TokenManager {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = config.DefaultScopes
	}

	m := &TokenManager{
		store: store,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		client:  &http.Client{Timeout: 10 * time.Second},
		skew:    defaultRefreshSkew,
		nowFunc: time.Now,
		logger:  slog.Default(),
	}
	if cfg.RefreshSkew > 0 {
		m.skew = cfg.RefreshSkew
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configured reports whether client id, secret and redirect URI are set.
func (m *TokenManager) Configured() bool {
	return m.oauth.ClientID != "" && m.oauth.ClientSecret != "" && m.oauth.RedirectURL != ""
}

// AuthCodeURL returns the consent page URL carrying state.
func (m *TokenManager) AuthCodeURL(state string) (string, error) {
	if !m.Configured() {
		return "", ErrOAuthNotConfigured
	}
	return m.oauth.AuthCodeURL(state), nil
}

// Exchange trades an authorization code for the initial credential and
// stores it.
func (m *TokenManager) Exchange(ctx context.Context, code string) (*domain.Credential, error) {
	if !m.Configured() {
		return nil, ErrOAuthNotConfigured
	}

	ctx, span := tracer.Start(ctx, "ebay.token.exchange")
	defer span.End()

	now := m.nowFunc()
	tok, err := m.oauth.Exchange(m.httpContext(ctx), code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exchange failed")
		if re := retrieveError(err); re != nil {
			return nil, fmt.Errorf("exchanging authorization code: %w", re)
		}
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	cred := m.credentialFrom(tok, "", now)
	if err := m.save(ctx, cred); err != nil {
		return nil, err
	}

	m.logger.Info("ebay authorization completed", "expires_at", cred.ExpiresAt)
	return cred, nil
}

// Token returns a usable access token. A fresh stored token is returned with
// no network call; an expiring one is refreshed first.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	cred, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	if cred.Usable(m.nowFunc(), m.skew) {
		return cred.AccessToken, nil
	}
	if !cred.CanRefresh() {
		return "", ErrAuthRequired
	}

	cred, err = m.sharedRefresh(ctx, 0, false)
	if err != nil {
		return "", err
	}
	return cred.AccessToken, nil
}

// RefreshIfExpiring refreshes the credential when it stops being usable
// within the given window. It reports whether a refresh grant ran.
func (m *TokenManager) RefreshIfExpiring(ctx context.Context, within time.Duration) (bool, error) {
	cred, err := m.load(ctx)
	if err != nil {
		return false, err
	}
	if cred.Usable(m.nowFunc().Add(within), m.skew) {
		return false, nil
	}
	if !cred.CanRefresh() {
		return false, ErrAuthRequired
	}

	before := cred.AccessToken
	cred, err = m.sharedRefresh(ctx, within, false)
	if err != nil {
		return false, err
	}
	return cred.AccessToken != before, nil
}

// ForceRefresh runs a refresh grant even if the stored token is still usable.
func (m *TokenManager) ForceRefresh(ctx context.Context) (*domain.Credential, error) {
	return m.sharedRefresh(ctx, 0, true)
}

// Status reports the credential lifecycle state without any network call.
func (m *TokenManager) Status(ctx context.Context) (*TokenStatus, error) {
	cred, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	st := &TokenStatus{}
	if cred != nil {
		st.ExpiresAt = cred.ExpiresAt
		st.UpdatedAt = cred.UpdatedAt
		st.HasRefreshToken = cred.CanRefresh()
	}

	switch {
	case m.refreshing.Load() > 0:
		st.State = StateRefreshing
	case cred == nil || (cred.AccessToken == "" && !cred.CanRefresh()):
		st.State = StateUnauthenticated
	case m.authRequired.Load():
		st.State = StateAuthRequired
	case cred.Usable(m.nowFunc(), m.skew):
		st.State = StateAuthorized
	case cred.CanRefresh():
		st.State = StateExpired
	default:
		st.State = StateAuthRequired
	}
	return st, nil
}

// load returns the stored credential, or nil when none exists.
func (m *TokenManager) load(ctx context.Context) (*domain.Credential, error) {
	cred, err := m.store.GetCredential(ctx)
	if errors.Is(err, domain.ErrNoCredential) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credential: %w", err)
	}
	return cred, nil
}

// sharedRefresh joins or starts the in-flight refresh for the same request.
// Forced refreshes and each expiry window get their own flight so a caller
// never settles for a result that does not satisfy it. The flight outlives a
// caller that gives up, so the rotated credential is always saved.
func (m *TokenManager) sharedRefresh(ctx context.Context, within time.Duration, force bool) (*domain.Credential, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(flightKey(within, force), func() (any, error) {
		return m.refresh(flightCtx, within, force)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Credential), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func flightKey(within time.Duration, force bool) string {
	switch {
	case force:
		return forceFlightKey
	case within > 0:
		return "within:" + within.String()
	default:
		return refreshFlightKey
	}
}

// refresh runs inside the flight. Grants are serialized across flights, and
// the store is re-read under the lock so a refresh that finished just before
// is reused and a rotated refresh token is never replayed.
func (m *TokenManager) refresh(ctx context.Context, within time.Duration, force bool) (*domain.Credential, error) {
	m.refreshing.Add(1)
	defer m.refreshing.Add(-1)

	m.grantMu.Lock()
	defer m.grantMu.Unlock()

	cred, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if !force && cred.Usable(m.nowFunc().Add(within), m.skew) {
		return cred, nil
	}
	if !cred.CanRefresh() {
		return nil, ErrAuthRequired
	}

	ctx, span := tracer.Start(ctx, "ebay.token.refresh")
	defer span.End()

	now := m.nowFunc()
	src := m.oauth.TokenSource(m.httpContext(ctx), &oauth2.Token{RefreshToken: cred.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		rerr := &RefreshError{Err: err}
		if re := retrieveError(err); re != nil {
			rerr.StatusCode = re.Response.StatusCode
			rerr.Body = string(re.Body)
			rerr.Err = nil
		}
		if rerr.Rejected() {
			m.authRequired.Store(true)
			metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		} else {
			// Transport and 5xx failures leave the state at Expired: the stored
			// refresh token is still good, only a rejection needs re-authorization.
			metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		}
		span.RecordError(rerr)
		span.SetStatus(codes.Error, "refresh failed")
		m.logger.Warn("ebay token refresh failed", "status", rerr.StatusCode, "error", rerr)
		return nil, rerr
	}

	next := m.credentialFrom(tok, cred.RefreshToken, now)
	if err := m.save(ctx, next); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	span.SetAttributes(attribute.String("ebay.token.expires_at", next.ExpiresAt.Format(time.RFC3339)))
	m.logger.Info("ebay access token refreshed", "expires_at", next.ExpiresAt)
	return next, nil
}

// credentialFrom converts a grant response. A missing refresh token keeps
// the previous one.
func (m *TokenManager) credentialFrom(tok *oauth2.Token, prevRefresh string, now time.Time) *domain.Credential {
	refresh := tok.RefreshToken
	if refresh == "" {
		refresh = prevRefresh
	}

	var expires time.Time
	switch {
	case tok.ExpiresIn > 0:
		expires = now.Add(time.Duration(tok.ExpiresIn) * time.Second)
	case !tok.Expiry.IsZero():
		expires = tok.Expiry
	default:
		expires = now.Add(defaultExpiresIn)
	}

	return &domain.Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: refresh,
		ExpiresAt:    expires,
	}
}

func (m *TokenManager) save(ctx context.Context, cred *domain.Credential) error {
	if err := m.store.SaveCredential(ctx, cred); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	m.authRequired.Store(false)
	metrics.TokenExpiryTimestamp.Set(float64(cred.ExpiresAt.Unix()))
	return nil
}

func (m *TokenManager) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, m.client)
}

func retrieveError(err error) *oauth2.RetrieveError {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return re
	}
	return nil
}
