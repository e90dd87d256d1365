// Package service runs boundary decisions and persists their outcomes
package service

import (
	"context"
	"time"

	core "chalie/internal/core/boundary"
	perr "chalie/internal/platform/errors"
	"chalie/internal/platform/logger"

	"chalie/internal/services/boundary/domain"
	focusdom "chalie/internal/services/focus/domain"
	msgdom "chalie/internal/services/messages/domain"
	topicdom "chalie/internal/services/topics/domain"
)

// Config for the boundary service
type Config struct {
	// Params configure the detector; FocusModifier is overridden per call
	// when a focus port is wired
	Params core.Params
}

// Service implements domain.DeciderPort
type Service struct {
	Log      logger.Logger
	States   domain.StatePort
	Messages msgdom.WriterPort
	Topics   topicdom.WriterPort
	Focus    focusdom.ModifierPort // nil disables focus sessions
	Events   EventSink             // nil disables the analytics sink
	Cfg      Config
}

// New constructs a new boundary service
func New(log logger.Logger, states domain.StatePort, msgs msgdom.WriterPort, topics topicdom.WriterPort, cfg Config) *Service {
	if states == nil {
		panic("boundary.Service requires a StatePort")
	}
	if msgs == nil || topics == nil {
		panic("boundary.Service requires message and topic writers")
	}
	return &Service{
		Log: log, States: states, Messages: msgs, Topics: topics, Cfg: cfg,
	}
}

// Decide implements domain.DeciderPort
// the detector is pure; everything around it is load, update, persist
func (s *Service) Decide(ctx context.Context, in domain.DecideInput) (domain.Decision, error) {
	if in.ThreadID == "" {
		return domain.Decision{}, perr.InvalidArgf("thread id required")
	}
	if len(in.Embedding) == 0 {
		return domain.Decision{}, perr.InvalidArgf("embedding required")
	}
	if in.At.IsZero() {
		in.At = time.Now().UTC()
	}

	params := s.Cfg.Params
	if s.Focus != nil {
		params.FocusModifier = s.Focus.Modifier(ctx, in.ThreadID)
	}

	det := core.New(params, s.States.Load(ctx, in.ThreadID))
	res := det.Update(in.Embedding, in.BestSimilarity)
	s.States.Save(ctx, in.ThreadID, det.State())

	d := domain.Decision{ThreadID: in.ThreadID, Result: res}

	// ledger and segment writes are secondary to the decision itself; a
	// storage failure is logged, not returned
	msgID, err := s.Messages.Insert(ctx, msgdom.WriteInput{
		ThreadID:       in.ThreadID,
		Text:           in.Text,
		BestSimilarity: in.BestSimilarity,
		IsBoundary:     res.IsBoundary,
		Accumulator:    res.Accumulator,
		Boundary:       res.Boundary,
		Confidence:     res.Confidence,
		CreatedAt:      in.At,
	})
	if err != nil {
		s.Log.Warn().Err(err).Str("thread_id", in.ThreadID).Msg("ledger write failed")
	} else {
		d.MessageID = msgID
	}

	if res.IsBoundary {
		seg, err := s.Topics.Open(ctx, topicdom.OpenInput{
			ThreadID:         in.ThreadID,
			StartedAt:        in.At,
			OpeningMessageID: d.MessageID,
			Confidence:       res.Confidence,
		})
		if err != nil {
			s.Log.Warn().Err(err).Str("thread_id", in.ThreadID).Msg("segment open failed")
		} else {
			d.SegmentID = seg.ID
		}

		s.emit(ctx, in, res)
	}

	return d, nil
}

// Reset implements domain.DeciderPort
func (s *Service) Reset(ctx context.Context, threadID string) error {
	if threadID == "" {
		return perr.InvalidArgf("thread id required")
	}
	return s.States.Clear(ctx, threadID)
}

// Peek implements domain.DeciderPort
func (s *Service) Peek(ctx context.Context, threadID string) (*core.State, error) {
	if threadID == "" {
		return nil, perr.InvalidArgf("thread id required")
	}
	return s.States.Peek(ctx, threadID)
}
