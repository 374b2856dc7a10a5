package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "3000", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "./static", c.StaticDir)
	assert.Equal(t, "./uploads", c.UploadDir)
	assert.Equal(t, 10, c.APITimeoutSeconds)
	assert.Equal(t, 3, c.UploadMaxFiles)
	assert.Equal(t, 50, c.UploadMaxSizeMB)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "info", c.LogLevel)

	// Secrets never get defaults.
	assert.Empty(t, c.APIBaseURL)
	assert.Empty(t, c.APISecretKey)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := AppConfig{AppPort: "8080", UploadMaxFiles: 5}
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, 5, c.UploadMaxFiles)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("API_BASE_URL", "https://animals.example.com/api")
	t.Setenv("API_SECRET_KEY", "hunter2")
	t.Setenv("ANIMAL_API_TIMEOUT_SECONDS", "30")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_COMPRESS", "true")

	var c AppConfig
	applyEnv(&c)

	assert.Equal(t, "9999", c.AppPort)
	assert.Equal(t, "https://animals.example.com/api", c.APIBaseURL)
	assert.Equal(t, "hunter2", c.APISecretKey)
	assert.Equal(t, 30, c.APITimeoutSeconds)
	assert.Zero(t, c.UploadMaxSizeMB) // unparsable int falls back to zero, then default
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.AllowedOrigins)
	assert.True(t, c.LogCompress)
}

func TestSetInjectsConfigForTests(t *testing.T) {
	Set(AppConfig{AppPort: "1234"})
	got := Get()
	assert.Equal(t, "1234", got.AppPort)
	// Defaults are still applied on injection.
	assert.Equal(t, 3, got.UploadMaxFiles)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"a"}, splitList("a,,"))
	assert.Empty(t, splitList(" , "))
}
