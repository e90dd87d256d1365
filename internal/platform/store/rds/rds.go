// Package rds provides a Redis client for small keyed state documents
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr     string
	DB       int
	Password string
}

// RDS is a redis client wrapper
type RDS struct {
	Client *redis.Client
}

var newClient = redis.NewClient

// Open creates a new RDS client with the given config
// connections are established lazily on first use
func Open(_ context.Context, cfg Config) (*RDS, error) {
	if cfg.Addr == "" {
		return nil, errors.New("rds: empty addr")
	}
	c := newClient(&redis.Options{ // use seam
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	return &RDS{Client: c}, nil
}

// Get returns the value at key
// a missing key returns (nil, nil), not an error
func (r *RDS) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SetEx writes value at key with an expiry
func (r *RDS) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Del removes the given keys; missing keys are not an error
func (r *RDS) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// Ping verifies connectivity
func (r *RDS) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Close closes the client
func (r *RDS) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
