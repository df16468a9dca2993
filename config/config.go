package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Store backends selectable with STORE_BACKEND
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
	BackendS3     = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Snapshot storage
	StoreBackend string
	StoreKey     string
	SeedFile     string

	// Database configuration
	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// S3 configuration
	S3BucketName string
	AWSRegion    string

	// JWT configuration
	JWTSecret string

	RemoteAPIURL  string
	LogLevel      string
	CORSOrigins   []string
	LikeRateLimit int
}

// LoadConfig creates a new Config instance with values from environment
// variables, docker secrets and .env files
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	if env == Development || env == Test {
		loadDotEnv(".env", ".env.local")
	}

	cfg, err := load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func load(env Environment) (*Config, error) {
	get := func(key, def string) string { return lookup(env, key, def) }

	cfg := &Config{
		Environment:   env,
		ServerPort:    get("SERVER_PORT", "8080"),
		ServerHost:    get("SERVER_HOST", "0.0.0.0"),
		StoreBackend:  strings.ToLower(get("STORE_BACKEND", BackendMemory)),
		StoreKey:      get("STORE_KEY", "recipes"),
		SeedFile:      get("SEED_FILE", ""),
		DBDriver:      strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBDSN:         get("DB_DSN", ""),
		DBHost:        get("DB_HOST", ""),
		DBPort:        get("DB_PORT", "5432"),
		DBUser:        get("DB_USER", ""),
		DBPassword:    get("DB_PASSWORD", ""),
		DBName:        get("DB_NAME", "recipeshare"),
		DBSSLMode:     get("DB_SSL_MODE", "disable"),
		RedisURL:      get("REDIS_URL", ""),
		RedisHost:     get("REDIS_HOST", ""),
		RedisPort:     get("REDIS_PORT", "6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		S3BucketName:  get("S3_BUCKET_NAME", ""),
		AWSRegion:     get("AWS_REGION", ""),
		JWTSecret:     get("JWT_SECRET", ""),
		RemoteAPIURL:  get("REMOTE_API_URL", ""),
		LogLevel:      strings.ToLower(get("LOG_LEVEL", "info")),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "")),
	}

	var err error
	if cfg.RedisDB, err = atoi("REDIS_DB", get("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.LikeRateLimit, err = atoi("LIKE_RATE_LIMIT", get("LIKE_RATE_LIMIT", "30")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisConfigured reports whether a Redis connection was configured
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// PostgresDSN builds a lib/pq connection string when DB_DSN is not set
func (c *Config) PostgresDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("%q is not an integer", value)}
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
