package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration read from the environment.
type Config struct {
	Port            string
	CatalogPath     string
	DatabaseURL     string
	DBDriver        string
	RedisURL        string
	CacheTTL        time.Duration
	MaxRouteCenters int
	RateLimitRPS    float64
	RateLimitBurst  int
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads configuration from environment variables, applying defaults
// for anything unset. Malformed numeric values fall back to the default
// and are logged.
func Load() *Config {
	return &Config{
		Port:            Get("PORT", "3000"),
		CatalogPath:     strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBDriver:        strings.TrimSpace(os.Getenv("DB_DRIVER")),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		CacheTTL:        getDuration("CACHE_TTL", 10*time.Minute),
		MaxRouteCenters: getInt("MAX_ROUTE_CENTERS", 8),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 20),
	}
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
