package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"artizans_back_end/internal/config"
)

// Cache holds the Redis connection used for the JWT revocation list.
// A nil *Cache is valid: revocation checks then always report "not revoked",
// which degrades logout to cookie clearing only.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg *config.Config) (*Cache, error) {
	if cfg.RedisHost == "" {
		return nil, fmt.Errorf("REDIS_HOST not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Println("✅ Connected to Redis")
	return &Cache{client: client}, nil
}

// BlacklistToken revokes a token id for the remainder of its lifetime.
func (c *Cache) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	key := "blacklist:" + jti
	return c.client.Set(ctx, key, "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether a token id has been revoked.
func (c *Cache) IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if c == nil {
		return false
	}
	key := "blacklist:" + jti
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("⚠️  Blacklist check failed: %v", err)
		return false
	}
	return exists > 0
}

// Close shuts down the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
