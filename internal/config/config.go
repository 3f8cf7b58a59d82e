package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	StateDir    string        `envconfig:"STATE_DIR" default:".maison"`
	AppEnv      string        `envconfig:"APP_ENV" default:"development"`

	// Requests per second against the API; zero disables throttling.
	APIRateLimit float64 `envconfig:"API_RATE_LIMIT" default:"0"`
	APIRateBurst int     `envconfig:"API_RATE_BURST" default:"5"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return &cfg, nil
}
