package config

// Redis backs the response cache and the rate limiter.  Every list view
// on the dashboard is a round trip to the Sheets API, so short-lived
// caching of GET responses saves both latency and API quota.  If no
// Redis server is reachable at startup the constructor returns nil and
// callers disable caching and rate limiting rather than failing.

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the environment.
// Supported variables:
//
//	REDIS_ADDR     – host:port, default "localhost:6379"
//	REDIS_PASSWORD – optional password
//
// The returned client is nil when the server cannot be pinged.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
