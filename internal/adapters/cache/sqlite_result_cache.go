package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"strings"
	"time"
)

// SQLite backed cache of optimization results keyed by input fingerprint.
// Entries older than TTL read as misses; a zero TTL never expires.
type SqliteResultCache struct {
	DB  *sql.DB
	TTL time.Duration

	now func() time.Time
}

func NewSqliteResultCache(db *sql.DB, ttl time.Duration) *SqliteResultCache {
	return &SqliteResultCache{DB: db, TTL: ttl, now: time.Now}
}

// Create the result_cache table if needed.
func (s *SqliteResultCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("result cache: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS result_cache (
		cache_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		stored_at INTEGER NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("result cache: create table: %w", err)
	}
	return nil
}

func (s *SqliteResultCache) Get(ctx context.Context, key string) (_ *domain.OptimizationResult, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.sqlite.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("result cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	var (
		payload  string
		storedAt int64
	)
	err = s.DB.QueryRowContext(ctx, `
	SELECT payload, stored_at
	FROM result_cache
	WHERE cache_key = ?;
	`, key).Scan(&payload, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: query result_cache table: %w", err)
	}

	if s.TTL > 0 && s.now().Sub(time.Unix(storedAt, 0)) > s.TTL {
		return nil, false, nil
	}

	var result domain.OptimizationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, false, fmt.Errorf("get result cache: decode key=%s: %w", key, err)
	}
	return &result, true, nil
}

func (s *SqliteResultCache) Put(ctx context.Context, key string, result *domain.OptimizationResult) (err error) {
	defer obs.Time(ctx, "result.cache.sqlite.Put")(&err)

	if s.DB == nil {
		return errors.New("result cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert result cache: key must not be empty")
	}
	if result == nil {
		return errors.New("insert result cache: result is nil")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("insert result cache: encode key=%s: %w", key, err)
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO result_cache (
		cache_key,
		payload,
		stored_at
	)
	VALUES (?, ?, ?);
	`, key, string(payload), s.now().Unix()); err != nil {
		return fmt.Errorf("insert result cache key=%s: %w", key, err)
	}
	return nil
}
