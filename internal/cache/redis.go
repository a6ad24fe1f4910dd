package cache

import (
	"context"
	"encoding/json"
	"time"

	"foodrec/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON layer over Redis. It is entirely optional: when no
// Redis address is configured (or the ping fails) every method degrades to a
// miss, so callers never branch on availability.
type Cache struct {
	rdb *redis.Client
	log *zap.SugaredLogger
}

// New connects to Redis when an address is configured. A missing or
// unreachable Redis is not an error: responses are simply never cached.
func New(cfg *config.Config, log *zap.SugaredLogger) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{log: log}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("[cache] redis unreachable at %s, caching disabled: %v", cfg.RedisAddr, err)
		return &Cache{log: log}
	}

	log.Infof("[cache] redis connected at %s", cfg.RedisAddr)
	return &Cache{rdb: rdb, log: log}
}

// Enabled reports whether a Redis connection is live (for the health endpoint).
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON reads a key and unmarshals it into dest. The bool reports a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}
