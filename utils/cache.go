// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"slotbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// GateCacheClient backs the admission gate counters when the gate
	// runs against a shared store.
	GateCacheClient *redis.Client
	// LockClient is the dedicated client for per-provider booking locks.
	LockClient *redis.Client
)

// InitGateCache initializes the Redis client for admission gate counters.
func InitGateCache() {
	GateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisGateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := GateCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Gate): %v", err)
	}
}

// GetGateCacheClient returns the admission gate cache client.
func GetGateCacheClient() *redis.Client {
	if GateCacheClient == nil {
		InitGateCache()
	}
	return GateCacheClient
}

// InitLockCache initializes the Redis client for provider booking locks.
func InitLockCache() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Locks): %v", err)
	}
}

// GetLockClient returns the Redis client for provider booking locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockCache()
	}
	return LockClient
}
