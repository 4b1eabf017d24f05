package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_USER", "")
	t.Setenv("STORAGE_DIR", "")
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "uploads", cfg.StorageDir)
	assert.Equal(t, "587", cfg.SMTPPort)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KV_REST_API_URL", "https://kv.example.com")
	t.Setenv("KV_REST_API_TOKEN", "tok")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://kv.example.com", cfg.KVRestURL)
	assert.Equal(t, "tok", cfg.KVRestToken)
}
