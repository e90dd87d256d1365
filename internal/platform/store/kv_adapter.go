package store

import (
	"context"
	"errors"
	"time"

	"chalie/internal/platform/store/rds"
)

// newKVAdapter is called by openers.go to wrap an existing *rds.RDS
// and return the store.KV seam
func newKVAdapter(r *rds.RDS) KV {
	return &kvAdapter{inner: r}
}

// kvAdapter adapts *rds.RDS to the store.KV interface
type kvAdapter struct {
	inner *rds.RDS
}

var _ KV = (*kvAdapter)(nil)

func (a *kvAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.inner.Get(ctx, key)
}

func (a *kvAdapter) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return a.inner.SetEx(ctx, key, value, ttl)
}

func (a *kvAdapter) Del(ctx context.Context, keys ...string) error {
	return a.inner.Del(ctx, keys...)
}

func (a *kvAdapter) Close() error { return a.inner.Close() }

// Ping verifies connectivity with redis
func (a *kvAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil kv adapter")
	}
	return a.inner.Ping(ctx)
}
