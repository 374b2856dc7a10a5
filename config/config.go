package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
// Secrets (the upstream API key) never have defaults inside code and must be
// provided via a .env file or the environment.
type AppConfig struct {
	AppPort string
	GinMode string

	// Filesystem surfaces
	StaticDir string
	UploadDir string

	// Upstream animal-data API
	APIBaseURL        string
	APISecretKey      string
	APITimeoutSeconds int

	// Upload policy
	UploadMaxFiles  int
	UploadMaxSizeMB int

	RateLimitPerMinute int
	AllowedOrigins     []string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load reads the application configuration. It should be called once during boot.
// Precedence: .env file -> environment variables -> defaults.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Best effort: a missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	applyEnv(&cfg)
	applyDefaults(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Set replaces the cached configuration. Intended for tests.
func Set(c AppConfig) {
	applyDefaults(&c)
	cfg = c
	loaded = true
}

// applyEnv maps known environment variables onto config values when present.
func applyEnv(c *AppConfig) {
	c.AppPort = getEnv("APP_PORT", "")
	c.GinMode = getEnv("GIN_MODE", "")
	c.StaticDir = getEnv("STATIC_DIR", "")
	c.UploadDir = getEnv("UPLOAD_DIR", "")
	c.APIBaseURL = getEnv("API_BASE_URL", "")
	c.APISecretKey = getEnv("API_SECRET_KEY", "")
	c.APITimeoutSeconds = getEnvInt("ANIMAL_API_TIMEOUT_SECONDS", 0)
	c.UploadMaxFiles = getEnvInt("UPLOAD_MAX_FILES", 0)
	c.UploadMaxSizeMB = getEnvInt("UPLOAD_MAX_SIZE_MB", 0)
	c.RateLimitPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", 0)
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	c.LogLevel = getEnv("LOG_LEVEL", "")
	c.LogPath = getEnv("LOG_PATH", "")
	c.LogMaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", 0)
	c.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 0)
	c.LogMaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", 0)
	c.LogCompress = getEnvBool("LOG_COMPRESS", false)
}

// applyDefaults fills defaults for any zero values. The API base URL and secret
// key intentionally have no defaults; the routes that need them report a
// descriptive JSON error when they are missing.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "3000"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.StaticDir == "" {
		c.StaticDir = "./static"
	}
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}
	if c.APITimeoutSeconds == 0 {
		c.APITimeoutSeconds = 10
	}
	if c.UploadMaxFiles == 0 {
		c.UploadMaxFiles = 3
	}
	if c.UploadMaxSizeMB == 0 {
		c.UploadMaxSizeMB = 50
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
