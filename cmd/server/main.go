package main

import (
	"context"
	"database/sql"
	"fmt"
	"itinerary-route-service/internal/adapters/cache"
	"itinerary-route-service/internal/adapters/repositories"
	"itinerary-route-service/internal/api"
	"itinerary-route-service/internal/config"
	"itinerary-route-service/internal/platform/db"
	"itinerary-route-service/internal/platform/metrics"
	"itinerary-route-service/internal/ports"
	"itinerary-route-service/internal/services"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis or SQLite cache) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, repo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Seed demo data on startup for local runs.
	ctx := context.Background()
	if _, err := os.Stat(cfg.SeedPath); err == nil {
		if err := repositories.SeedFromJSON(ctx, repo, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded itinerary path=%s", cfg.SeedPath)
	} else {
		log.Printf("no seed file path=%s", cfg.SeedPath)
	}

	resultCache, err := openResultCache(ctx, cfg, conn)
	if err != nil {
		log.Fatal(err)
	}

	optimizer := services.NewDayOptimizer(repo, resultCache, services.Options{Strategy: cfg.Strategy})
	optimizer.Concurrency = cfg.Concurrency
	windows := cfg.MealWindows
	optimizer.MealWindows = &windows

	metrics.Register()
	router := api.NewRouter(optimizer)

	log.Printf("Server listening addr=:%s db=%s strategy=%s", cfg.Port, cfg.DBDriver, optimizer.Options.Strategy)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRepository(cfg *config.Config) (*sql.DB, ports.ItineraryRepository, error) {
	if cfg.DBDriver == "postgres" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open repository: %w", err)
		}
		return conn, repositories.NewSQLItineraryRepository(conn), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("open repository: create data dir: %w", err)
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open repository: %w", err)
	}
	return conn, repositories.NewSqliteItineraryRepository(conn), nil
}

// openResultCache prefers Redis, then the SQLite database itself. A zero TTL disables caching.
func openResultCache(ctx context.Context, cfg *config.Config, conn *sql.DB) (ports.ResultCache, error) {
	switch {
	case cfg.ResultCacheTTL == 0:
		log.Println("result cache disabled")
		return cache.NopResultCache{}, nil
	case cfg.RedisURL != "":
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Printf("result cache backend=redis ttl=%s", cfg.ResultCacheTTL)
		return cache.NewRedisResultCache(client, cfg.ResultCacheTTL), nil
	case cfg.DBDriver == "sqlite":
		c := cache.NewSqliteResultCache(conn, cfg.ResultCacheTTL)
		if err := c.InitSchema(ctx); err != nil {
			return nil, err
		}
		log.Printf("result cache backend=sqlite ttl=%s", cfg.ResultCacheTTL)
		return c, nil
	default:
		log.Println("result cache disabled (no REDIS_URL)")
		return cache.NopResultCache{}, nil
	}
}
