// Package repo persists detector state in an expiring keyed store
package repo

import (
	"context"
	"encoding/json"
	"time"

	core "chalie/internal/core/boundary"
	"chalie/internal/platform/logger"
	"chalie/internal/platform/store"
	"chalie/internal/services/boundary/domain"
)

const keyPrefix = "adaptive_boundary:"

// NewKVState constructs a StatePort backed by the store KV seam
// ttl bounds how long idle thread state survives
func NewKVState(log logger.Logger, kv store.KV, ttl time.Duration) domain.StatePort {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &kvState{log: log, kv: kv, ttl: ttl}
}

type kvState struct {
	log logger.Logger
	kv  store.KV
	ttl time.Duration
}

func key(threadID string) string { return keyPrefix + threadID }

// Load returns the persisted state for the thread
// a miss, a read failure, or a corrupt document all degrade to fresh state
func (s *kvState) Load(ctx context.Context, threadID string) core.State {
	raw, err := s.kv.Get(ctx, key(threadID))
	if err != nil {
		s.log.Warn().Err(err).Str("thread_id", threadID).Msg("boundary state load failed, starting fresh")
		return core.NewState()
	}
	if raw == nil {
		return core.NewState()
	}

	var st core.State
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.Warn().Err(err).Str("thread_id", threadID).Msg("boundary state corrupt, starting fresh")
		return core.NewState()
	}
	st.Sanitize()
	return st
}

// Save persists the state with the configured TTL
// failures are logged and dropped so the decision still stands
func (s *kvState) Save(ctx context.Context, threadID string, st core.State) {
	raw, err := json.Marshal(st)
	if err != nil {
		s.log.Warn().Err(err).Str("thread_id", threadID).Msg("boundary state marshal failed")
		return
	}
	if err := s.kv.SetEx(ctx, key(threadID), raw, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("thread_id", threadID).Msg("boundary state save failed")
	}
}

// Clear drops the persisted state
func (s *kvState) Clear(ctx context.Context, threadID string) error {
	return s.kv.Del(ctx, key(threadID))
}

// Peek is the strict read used by inspection endpoints
func (s *kvState) Peek(ctx context.Context, threadID string) (*core.State, error) {
	raw, err := s.kv.Get(ctx, key(threadID))
	if err != nil || raw == nil {
		return nil, err
	}
	var st core.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	st.Sanitize()
	return &st, nil
}
