// Package service provides the message ledger service implementation
package service

import (
	"context"
	"time"

	"chalie/internal/core/normalize"
	perr "chalie/internal/platform/errors"

	"chalie/internal/modkit/repokit"
	"chalie/internal/services/messages/domain"
	"chalie/internal/services/messages/repo"
)

// Config for the messages service
type Config struct {
	// HardLimit is the maximum allowed limit per List call; defaults to 1000 if <=0
	HardLimit int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Norm   *normalize.Normalizer
	Cfg    Config
}

// New constructs a new messages service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 1000
	}
	return &Service{
		DB: db, Binder: b, Cfg: cfg, Norm: normalize.New(),
	}
}

// Insert implements domain.WriterPort
// text is normalized here so every stored row carries a canonical form
func (s *Service) Insert(ctx context.Context, in domain.WriteInput) (string, error) {
	if in.ThreadID == "" {
		return "", perr.InvalidArgf("thread id required")
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	textNorm := s.Norm.Normalize(in.Text)

	var id string
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		id, err = s.Binder.Bind(q).Insert(ctx, in, textNorm)
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Row, domain.AfterKey, error) {
	if in.ThreadID == "" {
		return nil, domain.AfterKey{}, perr.InvalidArgf("thread id required")
	}
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []domain.Row
	var next domain.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).List(ctx, in, limit)
		return err
	})
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	return rows, next, nil
}
