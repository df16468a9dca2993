package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateConfig checks that the selected backends have what they need.
// All problems are reported together.
func ValidateConfig(cfg *Config) error {
	var errs []error
	fail := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		fail("SERVER_PORT", fmt.Sprintf("%q is not a valid port", cfg.ServerPort))
	}
	if cfg.StoreKey == "" {
		fail("STORE_KEY", "must not be empty")
	}

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendRedis:
		if !cfg.RedisConfigured() {
			fail("REDIS_URL", "REDIS_URL or REDIS_HOST is required for the redis store")
		}
	case BackendSQL:
		switch cfg.DBDriver {
		case "sqlite":
			if cfg.DBDSN == "" {
				fail("DB_DSN", "a sqlite file path is required for the sql store")
			}
		case "postgres":
			if cfg.DBDSN == "" && cfg.DBHost == "" {
				fail("DB_HOST", "DB_DSN or DB_HOST is required for postgres")
			}
		default:
			fail("DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver))
		}
	case BackendS3:
		if cfg.S3BucketName == "" {
			fail("S3_BUCKET_NAME", "required for the s3 store")
		}
	default:
		fail("STORE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.StoreBackend))
	}

	if !logLevels[cfg.LogLevel] {
		fail("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}
	if cfg.LikeRateLimit < 0 {
		fail("LIKE_RATE_LIMIT", "must not be negative")
	}
	if cfg.JWTSecret == "" && cfg.Environment == Production {
		fail("JWT_SECRET", "jwt_secret secret is required in production")
	}

	return errors.Join(errs...)
}
