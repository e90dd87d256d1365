package domain

import (
	"context"

	core "chalie/internal/core/boundary"

	focusdom "chalie/internal/services/focus/domain"
	msgdom "chalie/internal/services/messages/domain"
	topicdom "chalie/internal/services/topics/domain"
)

// DeciderPort is the external port for boundary decisions
type DeciderPort interface {
	// Decide runs one message through the detector and persists the outcome
	Decide(ctx context.Context, in DecideInput) (Decision, error)

	// Reset drops the persisted detector state for a thread
	Reset(ctx context.Context, threadID string) error

	// Peek returns the persisted state, or (nil, nil) when none exists
	Peek(ctx context.Context, threadID string) (*core.State, error)
}

// StatePort persists detector state per thread
// Load and Save never fail the decision path: a broken store degrades to
// fresh state and a dropped write
type StatePort interface {
	Load(ctx context.Context, threadID string) core.State
	Save(ctx context.Context, threadID string, st core.State)
	Clear(ctx context.Context, threadID string) error
	Peek(ctx context.Context, threadID string) (*core.State, error)
}

// Ports are dependencies injected into the boundary module
type Ports struct {
	Messages msgdom.WriterPort     // required
	Topics   topicdom.WriterPort   // required
	Focus    focusdom.ModifierPort // optional; nil means no focus sessions
}
