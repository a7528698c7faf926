package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the liveness ping during Connect.
const connectTimeout = 5 * time.Second

var client *redis.Client

// Connect parses the URL, dials the server and verifies liveness with a ping.
// An explicit password overrides whatever the URL carries.
func Connect(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	client = c
	return nil
}

// SetClient swaps the package client; tests point it at miniredis.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the package client
func GetClient() *redis.Client {
	return client
}

// Set stores a key with a TTL
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes a key
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX sets a key only if it does not exist yet
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
