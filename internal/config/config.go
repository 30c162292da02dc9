// Package config loads environment configuration for the admin backend
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	CORS      CORSConfig
	Databases DatabaseSet
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port string
	Mode string
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	JWTSecret         string
	AccessExpiryHours int
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// DatabaseConfig holds the settings for one schema
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DatabaseSet holds the five schemas the panel reads and writes.
type DatabaseSet struct {
	Admin    DatabaseConfig // admin users, subscriptions, blogs, news
	Stock    DatabaseConfig // company financial detail tables
	Earnings DatabaseConfig // quarterly earnings
	Market   DatabaseConfig // sector weightage, screener, IPOs
	Fund     DatabaseConfig // mutual funds
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8090"),
			Mode: getEnv("SERVER_MODE", "debug"),
		},
		Auth: AuthConfig{
			JWTSecret:         os.Getenv("JWT_SECRET"),
			AccessExpiryHours: getEnvInt("JWT_ACCESS_EXPIRY_HOURS", 24),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitString(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			AllowCredentials: true,
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env: JWT_SECRET")
	}

	var err error
	if cfg.Databases, err = loadDatabases(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDatabases builds the five schema configs. DB_HOST/DB_PORT/DB_USER/
// DB_PASSWORD are shared; DB_DATABASE_NAME..DB_DATABASE_NAME5 select the
// schemas. A suffixed DB_HOST2 etc. overrides the shared value per schema.
func loadDatabases() (DatabaseSet, error) {
	var set DatabaseSet
	targets := []struct {
		suffix string
		dst    *DatabaseConfig
	}{
		{"", &set.Admin},
		{"2", &set.Stock},
		{"3", &set.Earnings},
		{"4", &set.Market},
		{"5", &set.Fund},
	}

	for _, t := range targets {
		name := os.Getenv("DB_DATABASE_NAME" + t.suffix)
		if name == "" {
			return set, fmt.Errorf("missing required env: DB_DATABASE_NAME%s", t.suffix)
		}
		*t.dst = DatabaseConfig{
			Host:     envOverride("DB_HOST", t.suffix, "localhost"),
			Port:     atoiDefault(envOverride("DB_PORT", t.suffix, "3306"), 3306),
			User:     envOverride("DB_USER", t.suffix, ""),
			Password: envOverride("DB_PASSWORD", t.suffix, ""),
			Name:     name,
		}
		if t.dst.User == "" {
			return set, fmt.Errorf("missing required env: DB_USER")
		}
	}
	return set, nil
}

func envOverride(key, suffix, fallback string) string {
	if suffix != "" {
		if v := os.Getenv(key + suffix); v != "" {
			return v
		}
	}
	return getEnv(key, fallback)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	return atoiDefault(os.Getenv(key), fallback)
}

func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// splitString splits a comma-separated string into a slice
func splitString(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
