package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for backwards compatibility with early bootstrap code
var globalConfig *Config

// Config holds all environment backed configuration for store-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Session store
	RedisAddr           string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"store_session"`
	SessionCookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// Authorization
	APIRequiredRole string `env:"API_REQUIRED_ROLE" envDefault:"admin"`
	DefaultRole     string `env:"DEFAULT_ROLE" envDefault:"user"`

	// OAuth2 delegated login
	OAuthRedirectBaseURL string `env:"OAUTH_REDIRECT_BASE_URL" envDefault:"http://localhost:8080"`
	GoogleClientID       string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret   string `env:"GOOGLE_CLIENT_SECRET"`
	GithubClientID       string `env:"GITHUB_CLIENT_ID"`
	GithubClientSecret   string `env:"GITHUB_CLIENT_SECRET"`

	// Rate limiting
	LoginRateLimitPerMinute float64 `env:"LOGIN_RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	// Observability / Logging
	ServiceName string `env:"SERVICE_NAME" envDefault:"store-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate  bool `env:"AUTO_MIGRATE" envDefault:"true"`
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.OAuthRedirectBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OAUTH_REDIRECT_BASE_URL: %w", err)
	}

	cfg.APIRequiredRole = strings.TrimSpace(cfg.APIRequiredRole)
	if cfg.APIRequiredRole == "" {
		cfg.APIRequiredRole = "admin"
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// CallbackURL returns the absolute OAuth callback URL for the given provider.
func (c *Config) CallbackURL(provider string) string {
	return fmt.Sprintf("%s/auth/%s/callback", strings.TrimSuffix(c.OAuthRedirectBaseURL, "/"), provider)
}

// GetGlobal returns the global config instance for backwards compatibility.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
