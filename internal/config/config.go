package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultMarketURL = "https://api.coingecko.com/api/v3/coins/markets"

// Config holds application configuration
type Config struct {
	// Environment name: "production", "development" or "test"
	Env string

	// Server
	Host string
	Port string

	// Storage
	StoragePath string
	StorageKey  string

	// Market data
	MarketURL        string
	VsCurrency       string
	MarketPerPage    int
	RequestTimeout   time.Duration
	RefetchOnRefresh bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Host: getEnv("HOST", "127.0.0.1"),
		Port: getEnv("PORT", "8080"),

		StoragePath: getEnv("STORAGE_PATH", "coinfolio.db"),
		StorageKey:  getEnv("STORAGE_KEY", "bca_tokens_v1"),

		MarketURL:  getEnv("MARKET_URL", defaultMarketURL),
		VsCurrency: strings.ToLower(getEnv("MARKET_VS_CURRENCY", "usd")),
	}

	perPage, err := parsePositiveInt(os.Getenv("MARKET_PER_PAGE"), 150)
	if err != nil {
		return nil, fmt.Errorf("invalid MARKET_PER_PAGE: %w", err)
	}
	cfg.MarketPerPage = perPage

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	refetch, err := parseBool(os.Getenv("REFETCH_ON_REFRESH"), false)
	if err != nil {
		return nil, fmt.Errorf("invalid REFETCH_ON_REFRESH value: %w", err)
	}
	cfg.RefetchOnRefresh = refetch

	return cfg, nil
}

// Addr returns the listen address for the local API.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 15 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}

func parsePositiveInt(s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
