package postgres

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	apperrors "driftwatch/internal/errors"
)

// Config holds the connection settings for the baseline store.
type Config struct {
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfig reads connection settings from the environment. A .env file is
// loaded when present so local development does not need exported variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, apperrors.ConfigInvalid("DATABASE_URL environment variable is required")
	}

	return &Config{
		DatabaseURL:     url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}, nil
}
