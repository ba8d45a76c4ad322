package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL   string
	SessionSecret string
	TMDBAPIKey    string
	ServerPort    string
	Environment   string
	TMDBRetries   int
	Debug         bool
}

// Load reads configuration from the environment. The API key, session
// secret and database URL have no defaults: running without them is a
// misconfiguration, not a degraded mode.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("PORT", "5010"),
		Environment: getEnv("ENV", "development"),
		TMDBRetries: getEnvInt("TMDB_RETRIES", 1),
		Debug:       getEnv("DEBUG", "false") == "true",
	}

	var err error
	if cfg.TMDBAPIKey, err = getEnvRequired("TMDB_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.SessionSecret, err = getEnvRequired("SESSION_SECRET"); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL, err = getEnvRequired("DATABASE_URL"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable not set: %s", key)
	}
	return value, nil
}
