// Package cache is a short-TTL redis cache in front of the heaviest
// snapshot reads. Only raw row sets and sport counts are cached, never
// rendered responses, so request-time fields like is_live are always
// recomputed from fresh clock readings.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AAAZZZR/gambledashboard-backend/pkg/models"
	"github.com/redis/go-redis/v9"
)

// Cache wraps a redis client. A nil *Cache is valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given entry TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func sportRowsKey(sportKey string) string {
	return fmt.Sprintf("odds:rows:sport:%s", sportKey)
}

const sportsKey = "odds:sports"

// GetSportRows returns the cached latest-snapshot rows for a sport.
// Misses and redis errors both report ok=false; the caller falls through
// to the store.
func (c *Cache) GetSportRows(ctx context.Context, sportKey string) ([]models.OddsSnapshotRow, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, sportRowsKey(sportKey)).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []models.OddsSnapshotRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// SetSportRows stores a sport's latest-snapshot rows. Write failures are
// ignored; the cache is advisory.
func (c *Cache) SetSportRows(ctx context.Context, sportKey string, rows []models.OddsSnapshotRow) {
	if c == nil {
		return
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	c.client.Set(ctx, sportRowsKey(sportKey), data, c.ttl)
}

// GetSports returns the cached sports listing counts
func (c *Cache) GetSports(ctx context.Context) ([]models.SportCount, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, sportsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var sports []models.SportCount
	if err := json.Unmarshal(data, &sports); err != nil {
		return nil, false
	}
	return sports, true
}

// SetSports stores the sports listing counts
func (c *Cache) SetSports(ctx context.Context, sports []models.SportCount) {
	if c == nil {
		return
	}
	data, err := json.Marshal(sports)
	if err != nil {
		return
	}
	c.client.Set(ctx, sportsKey, data, c.ttl)
}
