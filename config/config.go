package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every runtime setting the server needs. Values come from
// the environment (a .env file is loaded by main in development).
type Config struct {
	Port        string
	PostgresURI string

	JWTSecret string
	TokenTTL  time.Duration

	AdminEmail    string
	AdminPassword string

	MaxUploadBytes int64
}

func Load() Config {
	return Config{
		Port:           envOr("PORT", "8080"),
		PostgresURI:    os.Getenv("POSTGRES_URI"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       envDuration("TOKEN_TTL", time.Hour),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 5<<20),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}
