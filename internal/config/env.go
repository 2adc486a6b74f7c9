package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL        = "http://localhost:8000/api"
	defaultTimeout       = 5 * time.Second
	defaultPort          = "8000"
	defaultHintRateLimit = "60-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - most setups have no .env file
	}

	cfg := &Config{
		APIURL:        envOr("ANTIVIBE_API_URL", defaultAPIURL),
		Timeout:       defaultTimeout,
		Port:          envOr("PORT", defaultPort),
		HintRateLimit: envOr("ANTIVIBE_RATE_LIMIT", defaultHintRateLimit),
		Environment:   envOr("ENVIRONMENT", "development"),
	}

	if v := os.Getenv("ANTIVIBE_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("ANTIVIBE_TIMEOUT must be a positive duration, got %q", v)
		}

		cfg.Timeout = timeout
	}

	if v := os.Getenv("ANTIVIBE_LENIENT_DECODING"); v != "" {
		lenient, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ANTIVIBE_LENIENT_DECODING must be a boolean, got %q", v)
		}

		cfg.LenientDecoding = lenient
	}

	if v := os.Getenv("ANTIVIBE_CLIENT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("ANTIVIBE_CLIENT_RPS must be a non-negative number, got %q", v)
		}

		cfg.ClientRPS = rps
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
