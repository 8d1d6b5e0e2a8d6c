package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "photocards", cfg.MongoDB)
	assert.Equal(t, []string{"http://localhost:3001"}, cfg.CORSOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.DevSecretInUse())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.DevSecretInUse())
}
