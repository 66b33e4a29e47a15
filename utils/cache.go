// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"quicklegal/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (last-login stamps, shared caches).
	CacheClient *redis.Client
	// LockClient is the dedicated client backing the slot lock.
	LockClient *redis.Client
)

// LastLoginKeyPrefix prefixes per-user last-login timestamps in the cache DB.
const LastLoginKeyPrefix = "user:last_login:"

// LastLoginTTL is how long a last-login stamp is retained.
const LastLoginTTL = 7 * 24 * time.Hour

// InitRedis initializes both Redis clients and verifies connectivity.
func InitRedis() {
	InitCache()
	InitLockClient()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
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

// InitLockClient initializes the Redis client backing the slot lock.
// Lock keys live in their own DB so cache flushes cannot drop live locks.
func InitLockClient() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Lock): %v", err)
	}
}

// GetLockClient returns the Redis client backing the slot lock.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockClient()
	}
	return LockClient
}
