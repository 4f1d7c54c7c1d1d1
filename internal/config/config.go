// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store driver names.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverFile     = "file"
)

// DefaultScopes are the OAuth scopes requested during authorization.
var DefaultScopes = []string{
	"https://api.ebay.com/oauth/api_scope",
	"https://api.ebay.com/oauth/api_scope/sell.account",
	"https://api.ebay.com/oauth/api_scope/sell.inventory",
	"https://api.ebay.com/oauth/api_scope/sell.fulfillment",
	"https://api.ebay.com/oauth/api_scope/sell.marketing",
}

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Ebay      EbayConfig      `yaml:"ebay"`
	Listing   ListingConfig   `yaml:"listing"`
	KeepAlive KeepAliveConfig `yaml:"keepalive"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// StoreConfig selects and configures the credential store.
type StoreConfig struct {
	Driver   string         `yaml:"driver"` // postgres, redis, file
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	File     FileConfig     `yaml:"file"`
	// Instance keys the single credential record so several deployments can
	// share one database without seeing each other's tokens.
	Instance string `yaml:"instance"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// FileConfig defines the JSON file store location.
type FileConfig struct {
	Path string `yaml:"path"`
}

// EbayConfig defines eBay API and OAuth settings.
type EbayConfig struct {
	ClientID        string          `yaml:"client_id"`
	ClientSecret    string          `yaml:"client_secret"`
	RedirectURI     string          `yaml:"redirect_uri"` // RuName
	Marketplace     string          `yaml:"marketplace"`
	Currency        string          `yaml:"currency"`
	ContentLanguage string          `yaml:"content_language"`
	APIURL          string          `yaml:"api_url"`
	AuthURL         string          `yaml:"auth_url"`
	TokenURL        string          `yaml:"token_url"`
	Scopes          []string        `yaml:"scopes"`
	RefreshSkew     time.Duration   `yaml:"refresh_skew"`
	Timeout         time.Duration   `yaml:"timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// OAuthConfigured reports whether the interactive authorization flow can run.
func (e *EbayConfig) OAuthConfigured() bool {
	return e.ClientID != "" && e.ClientSecret != "" && e.RedirectURI != ""
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ListingConfig defines defaults applied by the listing pipeline.
type ListingConfig struct {
	SKUPrefix       string `yaml:"sku_prefix"`
	ListingDuration string `yaml:"listing_duration"`
}

// KeepAliveConfig controls the background credential refresh job.
type KeepAliveConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// TelemetryConfig defines OpenTelemetry trace export settings.
// Tracing is disabled when OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	Insecure     bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStoreDefaults(&cfg.Store)
	applyEbayDefaults(&cfg.Ebay)
	applyListingDefaults(&cfg.Listing)
	applyKeepAliveDefaults(&cfg.KeepAlive)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 3000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyStoreDefaults(s *StoreConfig) {
	if s.Driver == "" {
		s.Driver = DriverFile
	}
	if s.Instance == "" {
		s.Instance = "default"
	}
	if s.Database.Port == 0 {
		s.Database.Port = 5432
	}
	if s.Database.SSLMode == "" {
		s.Database.SSLMode = "disable"
	}
	if s.Database.PoolSize == 0 {
		s.Database.PoolSize = 10
	}
	if s.Redis.Prefix == "" {
		s.Redis.Prefix = "quicklist"
	}
	if s.File.Path == "" {
		s.File.Path = "data/store.json"
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_DE"
	}
	if e.Currency == "" {
		e.Currency = "EUR"
	}
	if e.ContentLanguage == "" {
		e.ContentLanguage = "de-DE"
	}
	if e.APIURL == "" {
		e.APIURL = "https://api.ebay.com"
	}
	if e.AuthURL == "" {
		e.AuthURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if len(e.Scopes) == 0 {
		e.Scopes = DefaultScopes
	}
	if e.RefreshSkew == 0 {
		e.RefreshSkew = 60 * time.Second
	}
	if e.Timeout == 0 {
		e.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyListingDefaults(l *ListingConfig) {
	if l.SKUPrefix == "" {
		l.SKUPrefix = "SNIP"
	}
	if l.ListingDuration == "" {
		l.ListingDuration = "GTC"
	}
}

func applyKeepAliveDefaults(k *KeepAliveConfig) {
	if k.Interval == 0 {
		k.Interval = 40 * time.Minute
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "quicklist"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Store.Driver {
	case DriverPostgres:
		if cfg.Store.Database.Host == "" {
			errs = append(errs, fmt.Errorf("store.database.host is required when driver is postgres"))
		}
		if cfg.Store.Database.Name == "" {
			errs = append(errs, fmt.Errorf("store.database.name is required when driver is postgres"))
		}
		if cfg.Store.Database.User == "" {
			errs = append(errs, fmt.Errorf("store.database.user is required when driver is postgres"))
		}
	case DriverRedis:
		if cfg.Store.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("store.redis.addr is required when driver is redis"))
		}
	case DriverFile:
	default:
		errs = append(errs, fmt.Errorf(
			"store.driver must be one of: postgres, redis, file (got %q)",
			cfg.Store.Driver,
		))
	}

	if cfg.Ebay.RefreshSkew < 0 {
		errs = append(errs, fmt.Errorf("ebay.refresh_skew must not be negative"))
	}
	if cfg.KeepAlive.Enabled && cfg.KeepAlive.Interval < time.Minute {
		errs = append(errs, fmt.Errorf("keepalive.interval must be at least 1m"))
	}

	// OAuth credentials are optional at load time; /auth reports them missing.
	return errors.Join(errs...)
}
