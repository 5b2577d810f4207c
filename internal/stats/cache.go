// Package stats provides a Redis read-through cache for player
// statistics maps. The category evaluator hits this on every trophy or
// stat predicate, so the hot path should not touch SQLite.
package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Source is the authoritative statistics lookup (the SQL store).
type Source interface {
	PlayerStats(ctx context.Context, playerID string) (map[string]int, error)
}

// Cache decorates a Source with a Redis layer. Redis being down degrades
// to direct source reads; it never fails a guess.
type Cache struct {
	source Source
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

const defaultTTL = 12 * time.Hour

func NewCache(source Source, rdb *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{source: source, rdb: rdb, ttl: defaultTTL, logger: logger}
}

func cacheKey(playerID string) string { return "player_stats:" + playerID }

// PlayerStats returns the cached statistics map for a player, falling
// back to the source and writing back on a miss.
func (c *Cache) PlayerStats(ctx context.Context, playerID string) (map[string]int, error) {
	key := cacheKey(playerID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var stats map[string]int
		if jsonErr := json.Unmarshal(raw, &stats); jsonErr == nil {
			return stats, nil
		}
		c.logger.Warn("corrupt stats cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("stats cache read failed", "key", key, "error", err)
	}

	stats, err := c.source.PlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("stats cache write failed", "key", key, "error", err)
		}
	}
	return stats, nil
}

// Invalidate drops a player's cached stats, used after admin imports.
func (c *Cache) Invalidate(ctx context.Context, playerID string) {
	if err := c.rdb.Del(ctx, cacheKey(playerID)).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", "player_id", playerID, "error", err)
	}
}
