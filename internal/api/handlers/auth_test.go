package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/quicklist/internal/api/handlers"
	"github.com/donaldgifford/quicklist/internal/api/handlers/mocks"
	"github.com/donaldgifford/quicklist/internal/config"
	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/ebay/ebaytest"
	"github.com/donaldgifford/quicklist/internal/store"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoAPI(t *testing.T) (*echo.Echo, huma.API) {
	t.Helper()
	e := echo.New()
	return e, humaecho.New(e, huma.DefaultConfig("quicklist test", "test"))
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func ebayConfig(baseURL string) *config.EbayConfig {
	return &config.EbayConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "Quick_List-RuName",
		AuthURL:      baseURL + "/oauth2/authorize",
		TokenURL:     baseURL + "/identity/v1/oauth2/token",
		Scopes:       config.DefaultScopes,
	}
}

func TestAuthFlow_EndToEnd(t *testing.T) {
	t.Parallel()

	fake, srv := ebaytest.NewServer(t)
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	tm := ebay.NewTokenManager(fs, ebayConfig(srv.URL), ebay.WithHTTPClient(srv.Client()))

	e, api := newEchoAPI(t)
	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(tm, handlers.NewStateCache(0), quietLogger()))

	rec := serve(e, http.MethodGet, "/auth")
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/oauth2/authorize", loc.Path)
	q := loc.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "Quick_List-RuName", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Contains(t, q.Get("scope"), "https://api.ebay.com/oauth/api_scope/sell.inventory")
	state := q.Get("state")
	require.NotEmpty(t, state)

	rec = serve(e, http.MethodGet, "/callback?code=good-code&state="+url.QueryEscape(state))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "eBay account connected")
	assert.Equal(t, 1, fake.TokenCalls())

	cred, err := fs.GetCredential(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cred.AccessToken)
	assert.NotEmpty(t, cred.RefreshToken)
	assert.True(t, cred.ExpiresAt.After(time.Now()))

	rec = serve(e, http.MethodGet, "/callback?code=good-code&state="+url.QueryEscape(state))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "state is single use")

	rec = serve(e, http.MethodGet, "/api/auth/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"authorized"`)
	assert.Contains(t, rec.Body.String(), `"configured":true`)
	assert.NotContains(t, rec.Body.String(), cred.AccessToken)
}

func TestAuth_NotConfigured(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthorizer(t)
	auth.EXPECT().Configured().Return(false).Once()

	e, api := newEchoAPI(t)
	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(auth, nil, quietLogger()))

	rec := serve(e, http.MethodGet, "/auth")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be configured")
}

func TestCallback(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		setup      func(m *mocks.MockAuthorizer)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no state is accepted",
			query: "?code=abc",
			setup: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Exchange(mock.Anything, "abc").
					Return(&domain.Credential{AccessToken: "a", ExpiresAt: exp}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "Sun, 01 Mar 2026 14:00:00 UTC",
		},
		{
			name:       "unknown state",
			query:      "?code=abc&state=forged",
			setup:      func(*mocks.MockAuthorizer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "unknown or expired",
		},
		{
			name:       "missing code",
			query:      "?state=x",
			setup:      func(*mocks.MockAuthorizer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "no authorization code",
		},
		{
			name:       "consent declined",
			query:      "?error=access_denied",
			setup:      func(*mocks.MockAuthorizer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "access_denied",
		},
		{
			name:  "not configured",
			query: "?code=abc",
			setup: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Exchange(mock.Anything, "abc").Return(nil, ebay.ErrOAuthNotConfigured).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "not configured",
		},
		{
			name:  "transport failure",
			query: "?code=abc",
			setup: func(m *mocks.MockAuthorizer) {
				m.EXPECT().Exchange(mock.Anything, "abc").Return(nil, errors.New("dial tcp: timeout")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Could not reach eBay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := mocks.NewMockAuthorizer(t)
			tt.setup(auth)

			e, api := newEchoAPI(t)
			handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(auth, nil, quietLogger()))

			rec := serve(e, http.MethodGet, "/callback"+tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCallback_RejectedCode(t *testing.T) {
	t.Parallel()

	_, srv := ebaytest.NewServer(t)
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	tm := ebay.NewTokenManager(fs, ebayConfig(srv.URL), ebay.WithHTTPClient(srv.Client()))

	e, api := newEchoAPI(t)
	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(tm, nil, quietLogger()))

	rec := serve(e, http.MethodGet, "/callback?code=bad-code")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rejected the authorization code")

	_, err = fs.GetCredential(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStateCache(t *testing.T) {
	t.Parallel()

	c := handlers.NewStateCache(time.Minute)
	s1 := c.Issue()
	s2 := c.Issue()
	assert.NotEqual(t, s1, s2)

	assert.True(t, c.Consume(s1))
	assert.False(t, c.Consume(s1), "consumed once")
	assert.False(t, c.Consume("never-issued"))
	assert.True(t, c.Consume(s2))
}

func TestStateCache_Expiry(t *testing.T) {
	t.Parallel()

	c := handlers.NewStateCache(time.Millisecond)
	s := c.Issue()
	time.Sleep(10 * time.Millisecond)
	assert.False(t, c.Consume(s))
}

func TestGetAuthStatus(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     *ebay.TokenStatus
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "unauthenticated",
			status:     &ebay.TokenStatus{State: ebay.StateUnauthenticated},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"state":"unauthenticated"`, `"has_refresh_token":false`},
		},
		{
			name:       "expired but refreshable",
			status:     &ebay.TokenStatus{State: ebay.StateExpired, ExpiresAt: exp, HasRefreshToken: true},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"state":"expired"`, `"expires_at":"2026-03-01T14:00:00Z"`},
		},
		{
			name:       "store error",
			err:        errors.New("disk gone"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := mocks.NewMockAuthorizer(t)
			auth.EXPECT().Status(mock.Anything).Return(tt.status, tt.err).Once()
			if tt.err == nil {
				auth.EXPECT().Configured().Return(false).Once()
			}

			e, api := newEchoAPI(t)
			handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(auth, nil, quietLogger()))

			rec := serve(e, http.MethodGet, "/api/auth/status")
			require.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
