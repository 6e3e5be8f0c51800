package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the loaded configuration is usable before
// anything connects with it.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 16 && IsProduction() {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters in production")
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return fmt.Errorf("postgres driver requires DB_HOST, DB_PORT, DB_USER and DB_NAME")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			return fmt.Errorf("sqlite driver requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		return fmt.Errorf("S3_BUCKET_NAME is set but AWS_REGION is empty")
	}

	return nil
}
