// Package metadata caches provider load responses and turns them into
// detail views.
package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Cache is a SQLite-backed TTL store for serialized load responses. Each
// entry remembers which provider produced it so a provider's entries can be
// dropped together.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache creates a cache over db. The metadata_cache table must exist.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Get returns the live value stored under key. Expired entries read as
// misses. A missing entry is not an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     string
		expiresAt time.Time
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !c.now().Before(expiresAt) {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key for ttl, replacing any previous entry.
func (c *Cache) Set(ctx context.Context, key, providerName string, value []byte, ttl time.Duration) error {
	expiresAt := c.now().Add(ttl).UTC()
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, provider, value, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   provider = excluded.provider,
		   value = excluded.value,
		   expires_at = excluded.expires_at`,
		key, providerName, string(value), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate removes every entry written by providerName and reports how
// many were removed.
func (c *Cache) Invalidate(ctx context.Context, providerName string) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE provider = ?", providerName)
	if err != nil {
		return 0, fmt.Errorf("cache invalidate %s: %w", providerName, err)
	}
	return res.RowsAffected()
}

// Prune removes expired entries and reports how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE expires_at <= ?", c.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return res.RowsAffected()
}
