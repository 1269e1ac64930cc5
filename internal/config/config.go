package config

import (
	"fmt"
	"itinerary-route-service/internal/domain"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env into the process environment when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

type Config struct {
	Port string

	DBDriver    string // sqlite | postgres
	DBPath      string
	DatabaseURL string
	SeedPath    string

	RedisURL       string
	ResultCacheTTL time.Duration

	Strategy    domain.Strategy
	Concurrency int
	MealWindows domain.MealWindows
}

// Load reads the service configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/itinerary.json"),
		RedisURL:    Get("REDIS_URL", ""),
		MealWindows: domain.DefaultMealWindows(),
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("config: DB_DRIVER %q: want sqlite or postgres", cfg.DBDriver)
	}

	ttl, err := time.ParseDuration(Get("RESULT_CACHE_TTL", "15m"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("config: RESULT_CACHE_TTL: invalid duration %q", Get("RESULT_CACHE_TTL", ""))
	}
	cfg.ResultCacheTTL = ttl

	if cfg.Strategy, err = domain.ParseStrategy(Get("OPTIMIZER_STRATEGY", "")); err != nil {
		return nil, fmt.Errorf("config: OPTIMIZER_STRATEGY: %w", err)
	}

	cfg.Concurrency, err = strconv.Atoi(Get("OPTIMIZER_CONCURRENCY", "4"))
	if err != nil || cfg.Concurrency < 1 {
		return nil, fmt.Errorf("config: OPTIMIZER_CONCURRENCY must be a positive integer")
	}

	if v := Get("DEFAULT_LUNCH", ""); v != "" {
		if cfg.MealWindows.Lunch, err = domain.ParseTimeWindow(v); err != nil {
			return nil, fmt.Errorf("config: DEFAULT_LUNCH: %w", err)
		}
	}
	if v := Get("DEFAULT_DINNER", ""); v != "" {
		if cfg.MealWindows.Dinner, err = domain.ParseTimeWindow(v); err != nil {
			return nil, fmt.Errorf("config: DEFAULT_DINNER: %w", err)
		}
	}

	return cfg, nil
}
