package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"serenispa/config"

	"github.com/go-redis/redis/v8"
)

// StatsCacheClient is the dedicated client for statistics caching.
var StatsCacheClient *redis.Client

// InitStatsCache initializes the Redis client used for statistics caching.
func InitStatsCache() {
	StatsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StatsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Stats Cache): %v", err)
	}
}

// GetStatsCacheClient returns the Redis client for statistics caching.
func GetStatsCacheClient() *redis.Client {
	if StatsCacheClient == nil {
		InitStatsCache()
	}
	return StatsCacheClient
}

// StatsCache stores computed statistics as JSON with a TTL.
type StatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// Get unmarshals the cached value for key into dest. Returns false on a miss.
func (c *StatsCache) Get(key string, dest interface{}) bool {
	if c == nil || c.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// Set marshals value and stores it under key with the cache TTL.
func (c *StatsCache) Set(key string, value interface{}) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		GetLogger().Sugar().Warnf("stats cache: failed to set %s: %v", key, err)
	}
}
