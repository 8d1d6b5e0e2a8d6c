// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strings"
)

// devSecret is used only when JWT_SECRET is unset. Insecure; main logs a
// warning when it is in effect.
const devSecret = "dev-secret-change-me"

// Config holds runtime settings for the server.
type Config struct {
	Port         string
	MongoURL     string
	MongoDB      string
	JWTSecret    string
	CORSOrigins  []string
	CookieSecure bool
}

// DevSecretInUse reports whether the signing secret fell back to the
// insecure development default.
func (c Config) DevSecretInUse() bool {
	return c.JWTSecret == devSecret
}

// Load builds a Config from environment variables, applying development
// defaults for anything unset.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "3000"),
		MongoURL:     getenv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "photocards"),
		JWTSecret:    getenv("JWT_SECRET", devSecret),
		CORSOrigins:  splitList(getenv("CORS_ORIGINS", "http://localhost:3001")),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
