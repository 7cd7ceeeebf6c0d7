package config

import (
	"os"
	"strconv"
	"time"

	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Input/output paths
	InputCSV  string
	OutputCSV string
	ImagesDir string

	// Fetching
	RequestDelay  time.Duration
	RenderTimeout time.Duration

	// Memcache configuration (optional per-domain cooldown cache)
	MemcacheAddr string

	// Redis configuration (optional record publishing)
	RedisAddr   string
	RedisDB     int
	RedisStream string

	// Manifest generation
	ManifestBaseURL string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	requestDelay, _ := strconv.Atoi(getEnv("REQUEST_DELAY_MS", "1000"))
	renderTimeout, _ := strconv.Atoi(getEnv("RENDER_TIMEOUT_MS", "30000"))

	return &Config{
		InputCSV:        getEnv("INPUT_CSV", "links.csv"),
		OutputCSV:       getEnv("OUTPUT_CSV", "produtos_vtex.csv"),
		ImagesDir:       getEnv("IMAGES_DIR", "imagens_produtos"),
		RequestDelay:    time.Duration(requestDelay) * time.Millisecond,
		RenderTimeout:   time.Duration(renderTimeout) * time.Millisecond,
		MemcacheAddr:    getEnv("MEMCACHE_ADDR", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisDB:         redisDB,
		RedisStream:     getEnv("REDIS_STREAM", "products"),
		ManifestBaseURL: getEnv("MANIFEST_BASE_URL", ""),
		Environment:     getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the parts of the configuration that must be sane before
// any URL is processed.
func (c *Config) Validate() error {
	if c.InputCSV == "" {
		return scraperErrors.NewConfiguration("INPUT_CSV must not be empty", nil)
	}
	if c.OutputCSV == "" {
		return scraperErrors.NewConfiguration("OUTPUT_CSV must not be empty", nil)
	}
	if c.RequestDelay < 0 {
		return scraperErrors.NewConfiguration("REQUEST_DELAY_MS must not be negative", nil)
	}
	if c.RenderTimeout <= 0 {
		return scraperErrors.NewConfiguration("RENDER_TIMEOUT_MS must be positive", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
