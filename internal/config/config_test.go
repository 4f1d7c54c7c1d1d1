package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty config uses file store and eBay defaults",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverFile, cfg.Store.Driver)
				assert.Equal(t, "data/store.json", cfg.Store.File.Path)
				assert.Equal(t, "default", cfg.Store.Instance)
				assert.Equal(t, "EBAY_DE", cfg.Ebay.Marketplace)
				assert.Equal(t, "EUR", cfg.Ebay.Currency)
				assert.Equal(t, "de-DE", cfg.Ebay.ContentLanguage)
				assert.Equal(t, 60*time.Second, cfg.Ebay.RefreshSkew)
				assert.Equal(t, DefaultScopes, cfg.Ebay.Scopes)
				assert.Equal(t, "GTC", cfg.Listing.ListingDuration)
				assert.Equal(t, "SNIP", cfg.Listing.SKUPrefix)
				assert.False(t, cfg.Ebay.OAuthConfigured())
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
store:
  driver: postgres
  database:
    host: localhost
    name: quicklist
    user: quicklist
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3000, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Store.Database.Port)
				assert.Equal(t, "disable", cfg.Store.Database.SSLMode)
				assert.Equal(t, 10, cfg.Store.Database.PoolSize)
				assert.Equal(t, "https://api.ebay.com", cfg.Ebay.APIURL)
				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "https://auth.ebay.com/oauth2/authorize", cfg.Ebay.AuthURL)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, 40*time.Minute, cfg.KeepAlive.Interval)
				assert.False(t, cfg.KeepAlive.Enabled)
				assert.Equal(t, "quicklist", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
ebay:
  client_id: ${QL_TEST_CLIENT_ID}
  client_secret: ${QL_TEST_CLIENT_SECRET}
  redirect_uri: My_App-RuName
`,
			envVars: map[string]string{
				"QL_TEST_CLIENT_ID":     "app-id",
				"QL_TEST_CLIENT_SECRET": "cert-id",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "app-id", cfg.Ebay.ClientID)
				assert.Equal(t, "cert-id", cfg.Ebay.ClientSecret)
				assert.True(t, cfg.Ebay.OAuthConfigured())
			},
		},
		{
			name: "redis driver",
			yaml: `
store:
  driver: redis
  redis:
    addr: localhost:6379
    db: 2
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverRedis, cfg.Store.Driver)
				assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
				assert.Equal(t, 2, cfg.Store.Redis.DB)
				assert.Equal(t, "quicklist", cfg.Store.Redis.Prefix)
			},
		},
		{
			name: "explicit values override defaults",
			yaml: `
server:
  port: 9090
ebay:
  marketplace: EBAY_GB
  currency: GBP
  refresh_skew: 2m
  scopes:
    - https://api.ebay.com/oauth/api_scope
keepalive:
  enabled: true
  interval: 30m
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "EBAY_GB", cfg.Ebay.Marketplace)
				assert.Equal(t, "GBP", cfg.Ebay.Currency)
				assert.Equal(t, 2*time.Minute, cfg.Ebay.RefreshSkew)
				assert.Len(t, cfg.Ebay.Scopes, 1)
				assert.True(t, cfg.KeepAlive.Enabled)
				assert.Equal(t, 30*time.Minute, cfg.KeepAlive.Interval)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "postgres driver requires host name and user",
			yaml: `
store:
  driver: postgres
`,
			wantErr: "store.database.host is required",
		},
		{
			name: "redis driver requires addr",
			yaml: `
store:
  driver: redis
`,
			wantErr: "store.redis.addr is required",
		},
		{
			name: "unknown driver",
			yaml: `
store:
  driver: sqlite
`,
			wantErr: `store.driver must be one of: postgres, redis, file (got "sqlite")`,
		},
		{
			name: "negative skew",
			yaml: `
ebay:
  refresh_skew: -1s
`,
			wantErr: "ebay.refresh_skew must not be negative",
		},
		{
			name: "keepalive interval too short",
			yaml: `
keepalive:
  enabled: true
  interval: 10s
`,
			wantErr: "keepalive.interval must be at least 1m",
		},
		{
			name:    "invalid YAML",
			yaml:    "store: [unclosed",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "quicklist",
		User:     "ql",
		Password: "secret",
		SSLMode:  "disable",
		PoolSize: 4,
	}

	assert.Equal(t,
		"host=localhost port=5432 dbname=quicklist user=ql password=secret sslmode=disable pool_max_conns=4",
		cfg.DSN(),
	)
}
