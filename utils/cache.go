// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"islandpulse/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// StatsCacheClient is the dedicated client for daily-stats snapshots.
	StatsCacheClient *redis.Client
)

// InitCache initializes the Redis cache clients.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	StatsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis cache not reachable at startup: %v", err)
	}
}

// GetCacheClient returns the generic cache client, initializing on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetStatsCacheClient returns the stats snapshot client.
func GetStatsCacheClient() *redis.Client {
	if StatsCacheClient == nil {
		InitCache()
	}
	return StatsCacheClient
}
