// Package service contains focus session workflows
package service

import (
	"context"
	"time"

	perr "chalie/internal/platform/errors"
	"chalie/internal/platform/logger"

	"chalie/internal/services/focus/domain"
	"chalie/internal/services/focus/repo"
)

// Config for the focus service
type Config struct {
	// DefaultTTL bounds a session when the caller does not pass one
	DefaultTTL time.Duration

	// MaxModifier caps how far a session may raise the boundary ceiling
	MaxModifier float64
}

// Service implements domain.SessionPort and domain.ModifierPort
type Service struct {
	Log  logger.Logger
	Repo repo.Storage
	Cfg  Config
}

// New constructs a new focus service
func New(log logger.Logger, st repo.Storage, cfg Config) *Service {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 2 * time.Hour
	}
	if cfg.MaxModifier <= 0 {
		cfg.MaxModifier = 3.0
	}
	return &Service{Log: log, Repo: st, Cfg: cfg}
}

// Set implements domain.SessionPort
func (s *Service) Set(ctx context.Context, in domain.SetInput) (domain.Session, error) {
	if in.ThreadID == "" {
		return domain.Session{}, perr.InvalidArgf("thread id required")
	}
	if in.Modifier <= 0 {
		return domain.Session{}, perr.InvalidArgf("modifier must be positive")
	}
	if in.Modifier > s.Cfg.MaxModifier {
		in.Modifier = s.Cfg.MaxModifier
	}
	ttl := in.TTL
	if ttl <= 0 {
		ttl = s.Cfg.DefaultTTL
	}

	sess := domain.Session{
		ThreadID: in.ThreadID,
		Modifier: in.Modifier,
		SetAt:    time.Now().UTC(),
	}
	if err := s.Repo.Put(ctx, sess, ttl); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Get implements domain.SessionPort
func (s *Service) Get(ctx context.Context, threadID string) (*domain.Session, error) {
	if threadID == "" {
		return nil, perr.InvalidArgf("thread id required")
	}
	return s.Repo.Fetch(ctx, threadID)
}

// Clear implements domain.SessionPort
func (s *Service) Clear(ctx context.Context, threadID string) error {
	if threadID == "" {
		return perr.InvalidArgf("thread id required")
	}
	return s.Repo.Delete(ctx, threadID)
}

// Modifier implements domain.ModifierPort
// lookup failures degrade to 0 so a redis hiccup never blocks a decision
func (s *Service) Modifier(ctx context.Context, threadID string) float64 {
	sess, err := s.Repo.Fetch(ctx, threadID)
	if err != nil {
		s.Log.Warn().Err(err).Str("thread_id", threadID).Msg("focus session lookup failed")
		return 0
	}
	if sess == nil {
		return 0
	}
	return sess.Modifier
}
