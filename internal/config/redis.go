package config

// Redis backs the response cache for public layout reads and the token
// bucket rate limiter. A missing or unreachable Redis is not fatal: the
// constructor returns nil and both features switch themselves off.

import (
	"context"
	"crypto/tls"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from the environment and verifies it
// with a short ping. Recognized variables:
//
//	REDIS_ADDR               – host:port (default localhost:6379)
//	REDIS_HOST / REDIS_PORT  – override REDIS_ADDR when both set
//	REDIS_PASSWORD           – optional password
//	REDIS_DB                 – database number
//	REDIS_TLS                – "true"/"1" enables TLS
//
// Returns nil when the server cannot be reached.
func NewRedisClient() *redis.Client {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	if h, p := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); h != "" && p != "" {
		addr = h + ":" + p
	}

	opts := &redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB", 0),
	}
	if v := os.Getenv("REDIS_TLS"); v == "1" || strings.EqualFold(v, "true") {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
