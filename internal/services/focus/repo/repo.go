// Package repo persists focus sessions in an expiring keyed store
package repo

import (
	"context"
	"encoding/json"
	"time"

	"chalie/internal/platform/store"
	"chalie/internal/services/focus/domain"
)

const keyPrefix = "focus_session:"

// Storage is the focus session repository
type Storage interface {
	Put(ctx context.Context, s domain.Session, ttl time.Duration) error
	Fetch(ctx context.Context, threadID string) (*domain.Session, error)
	Delete(ctx context.Context, threadID string) error
}

// NewKV constructs a Storage backed by the store KV seam
func NewKV(k store.KV) Storage { return &kvStore{kv: k} }

type kvStore struct{ kv store.KV }

func key(threadID string) string { return keyPrefix + threadID }

// Put writes the session document with an expiry
func (s *kvStore) Put(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.SetEx(ctx, key(sess.ThreadID), raw, ttl)
}

// Fetch returns the session, or (nil, nil) when absent
func (s *kvStore) Fetch(ctx context.Context, threadID string) (*domain.Session, error) {
	raw, err := s.kv.Get(ctx, key(threadID))
	if err != nil || raw == nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes the session
func (s *kvStore) Delete(ctx context.Context, threadID string) error {
	return s.kv.Del(ctx, key(threadID))
}
