package config

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// DevSessionSecret is used when SESSION_SECRET is not set. It is only fit for local development.
const DevSessionSecret = "adhdhub-development-session-secret"

// Provider exposes the application configuration to the rest of the code base.
type Provider interface {
	GetAppAddr() string
	GetAppName() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetContentDir() string
	GetContentWatch() bool
	GetBoardIdleTTL() time.Duration
	GetBoardSweepInterval() time.Duration
	GetAPIRateLimit() int
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string `env:"APP_ADDR,default=:8080"`
	AppName       string `env:"APP_NAME,default=ADHD Hub"`
	SessionSecret string `env:"SESSION_SECRET"`

	LogFormat string `env:"LOG_FORMAT,default=text"`
	LogLevel  string `env:"LOG_LEVEL,default=debug"`

	ContentDir   string `env:"CONTENT_DIR"`
	ContentWatch bool   `env:"CONTENT_WATCH,default=false"`

	BoardIdleTTL       time.Duration `env:"BOARD_IDLE_TTL,default=30m"`
	BoardSweepInterval time.Duration `env:"BOARD_SWEEP_INTERVAL,default=1m"`
	APIRateLimit       int           `env:"API_RATE_LIMIT,default=30"`

	TracingEnabled     bool   `env:"PUBSUB_TRACING_ENABLED,default=false"`
	TracingServiceName string `env:"PUBSUB_TRACING_SERVICE_NAME,default=adhdhub"`
	TracingZipkinURL   string `env:"PUBSUB_TRACING_ZIPKIN_URL,default=http://localhost:9411/api/v2/spans"`
}

// New loads configuration from a .env file (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnviron()
}

// FromEnviron decodes the configuration from the current process environment.
func FromEnviron() (*Config, error) {
	cfg := &Config{}
	if _, err := env.UnmarshalFromEnviron(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using the development secret")
		cfg.SessionSecret = DevSessionSecret
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BoardIdleTTL <= 0 {
		return fmt.Errorf("BOARD_IDLE_TTL must be positive, got %s", c.BoardIdleTTL)
	}
	if c.BoardSweepInterval <= 0 {
		return fmt.Errorf("BOARD_SWEEP_INTERVAL must be positive, got %s", c.BoardSweepInterval)
	}
	if c.APIRateLimit <= 0 {
		return fmt.Errorf("API_RATE_LIMIT must be positive, got %d", c.APIRateLimit)
	}
	if c.ContentWatch && c.ContentDir == "" {
		return fmt.Errorf("CONTENT_WATCH requires CONTENT_DIR")
	}
	return nil
}

func (c *Config) GetAppAddr() string { return c.AppAddr }
func (c *Config) GetAppName() string { return c.AppName }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetContentDir() string { return c.ContentDir }
func (c *Config) GetContentWatch() bool { return c.ContentWatch }
func (c *Config) GetBoardIdleTTL() time.Duration { return c.BoardIdleTTL }
func (c *Config) GetBoardSweepInterval() time.Duration { return c.BoardSweepInterval }
func (c *Config) GetAPIRateLimit() int { return c.APIRateLimit }
func (c *Config) GetTracingEnabled() bool { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string { return c.TracingZipkinURL }
