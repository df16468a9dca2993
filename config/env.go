package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

const defaultSecretsDir = "/run/secrets"

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch Environment(os.Getenv("ENV")) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}

// loadDotEnv reads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func loadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// lookup resolves key from the environment, then from the docker secret
// named after the lower-cased key. Production prefers the secret.
func lookup(env Environment, key, def string) string {
	secret := strings.ToLower(key)
	sources := []func() string{
		func() string { return os.Getenv(key) },
		func() string { return readSecret(secret) },
	}
	switch env {
	case Production:
		sources[0], sources[1] = sources[1], sources[0]
	case CI:
		sources = sources[:1]
	}
	for _, src := range sources {
		if v := src(); v != "" {
			return v
		}
	}
	return def
}
