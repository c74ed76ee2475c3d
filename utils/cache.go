// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// SnapshotCacheKey stores the latest serialized booking snapshot so
// per-keystroke availability checks don't hit Mongo.
const SnapshotCacheKey = "bookings:snapshot"

// SnapshotCacheTTL bounds how stale a cached snapshot may be.
const SnapshotCacheTTL = 15 * time.Second

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
