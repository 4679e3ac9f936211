package config

// This file defines a Redis client constructor for the application.
// Redis backs the booking rate limiter.  The client parameters are
// loaded from environment variables.  If the connection fails during
// startup the function returns nil and callers degrade gracefully by
// disabling rate limiting.

import (
    "context"
    "os"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables:
//
//	REDIS_ADDR     – host:port of the Redis server (default localhost:6379)
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The returned client is nil when a connection cannot be established.
func NewRedisClient() *redis.Client {
    addr := os.Getenv("REDIS_ADDR")
    if addr == "" {
        addr = "localhost:6379"
    }
    dbNum := 0
    if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
        if n, err := strconv.Atoi(dbStr); err == nil {
            dbNum = n
        }
    }
    client := redis.NewClient(&redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    })
    // Ping with a short timeout; return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
