package service

import (
	"context"
	"time"

	core "chalie/internal/core/boundary"
	"chalie/internal/platform/store"
	"chalie/internal/services/boundary/domain"
)

// EventSink records fired boundaries for offline analytics
type EventSink interface {
	Boundary(ctx context.Context, threadID string, at time.Time, res core.Result) error
}

// NewCHSink builds an EventSink over the clickhouse seam
func NewCHSink(ch store.Clickhouse) EventSink { return &chSink{ch: ch} }

type chSink struct{ ch store.Clickhouse }

func (s *chSink) Boundary(ctx context.Context, threadID string, at time.Time, res core.Result) error {
	return s.ch.Insert(ctx, "boundary_events", [][]any{{
		threadID,
		at,
		res.Accumulator,
		res.Boundary,
		res.NEWMASignal,
		res.SurpriseSignal,
		res.Confidence,
	}})
}

// emit forwards a fired boundary to the sink, dropping errors after a log line
func (s *Service) emit(ctx context.Context, in domain.DecideInput, res core.Result) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Boundary(ctx, in.ThreadID, in.At, res); err != nil {
		s.Log.Warn().Err(err).Str("thread_id", in.ThreadID).Msg("boundary event emit failed")
	}
}
