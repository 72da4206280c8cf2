package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Package-level client shared by the idempotency middleware. Only the small
// string surface it needs is exposed.
var client *redis.Client

const pingTimeout = 5 * time.Second

// Init connects to Redis from a URL and verifies the connection with a ping.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

// SetClient swaps the package client. Tests point this at miniredis.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the underlying client.
func GetClient() *redis.Client {
	return client
}

// Set stores value under key with a TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get returns the value stored under key, or redis.Nil when absent.
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes key.
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX stores value only when key is absent; reports whether it was set.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
