// Package service contains topic segment workflows
package service

import (
	"context"
	"time"

	perr "chalie/internal/platform/errors"

	"chalie/internal/modkit/repokit"
	"chalie/internal/services/topics/domain"
	"chalie/internal/services/topics/repo"
)

// Config for the topics service
type Config struct {
	// HardLimit is the maximum allowed limit per List call; defaults to 500 if <=0
	HardLimit int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new topics service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 500
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// Open implements domain.WriterPort
// closing the previous segment and opening the new one happen in one tx so a
// thread never has two open segments
func (s *Service) Open(ctx context.Context, in domain.OpenInput) (domain.Segment, error) {
	if in.ThreadID == "" {
		return domain.Segment{}, perr.InvalidArgf("thread id required")
	}
	if in.StartedAt.IsZero() {
		in.StartedAt = time.Now().UTC()
	}

	var seg domain.Segment
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)
		if err := st.CloseOpen(ctx, in.ThreadID, in.StartedAt); err != nil {
			return err
		}
		var err error
		seg, err = st.Insert(ctx, in)
		return err
	})
	if err != nil {
		return domain.Segment{}, err
	}
	return seg, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Segment, error) {
	if in.ThreadID == "" {
		return nil, perr.InvalidArgf("thread id required")
	}
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var out []domain.Segment
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).List(ctx, in, limit)
		return err
	})
	return out, err
}

// StatsDaily implements domain.ReaderPort
func (s *Service) StatsDaily(ctx context.Context, in domain.StatsInput) ([]domain.DailyRow, error) {
	if in.Since.IsZero() || in.Until.IsZero() || !in.Until.After(in.Since) {
		return nil, perr.InvalidArgf("stats window required")
	}

	var out []domain.DailyRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).StatsDaily(ctx, in)
		return err
	})
	return out, err
}
