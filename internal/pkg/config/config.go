package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Auth        AuthConfig
	History     HistoryConfig
	OpenAI      OpenAIConfig
	Redis       RedisConfig
	Translation TranslationConfig
}

type AuthConfig struct {
	SessionTTL    time.Duration `env:"SESSION_TTL,            default=24h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL, default=10m"`
	BcryptCost    int           `env:"BCRYPT_COST,            default=10"`
}

type HistoryConfig struct {
	Retention int `env:"HISTORY_RETENTION, default=100"`
	Workers   int `env:"HISTORY_WORKERS,   default=4"`
}

type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL"`
	Model   string        `env:"OPENAI_MODEL, default=gpt-3.5-turbo"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT, default=60s"`
}

// RedisConfig is optional; an empty Addr disables the translation cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
	// Timeout bounds dialing, each command and the startup ping.
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

type TranslationConfig struct {
	CacheTTL time.Duration `env:"TRANSLATION_CACHE_TTL, default=1h"`
}

// IsDevelopment reports whether pretty logging and permissive defaults apply.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
