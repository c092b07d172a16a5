package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL string        `env:"PORTAL_API_URL,   default=http://localhost:8080"`
	Timeout    time.Duration `env:"PORTAL_TIMEOUT,   default=30s"`
	ConfigDir  string        `env:"PORTAL_CONFIG_DIR"`
	LogLevel   string        `env:"LOG_LEVEL,        default=info"`
	LogPretty  bool          `env:"LOG_PRETTY,       default=true"`

	Dev DevConfig
}

// DevConfig configures the bundled development stub server.
type DevConfig struct {
	Port      string        `env:"DEV_PORT,       default=8080"`
	JWTSecret string        `env:"DEV_JWT_SECRET, default=dev-only-secret"`
	TokenTTL  time.Duration `env:"DEV_TOKEN_TTL,  default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
