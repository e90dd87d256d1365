package domain

import "context"

// SessionPort manages focus sessions for threads
type SessionPort interface {
	// Set starts or extends a session
	Set(ctx context.Context, in SetInput) (Session, error)

	// Get returns the active session, or (nil, nil) when none exists
	Get(ctx context.Context, threadID string) (*Session, error)

	// Clear ends the session; clearing an absent session is not an error
	Clear(ctx context.Context, threadID string) error
}

// ModifierPort is the narrow read surface the detector needs
// a missing or unreadable session yields 0
type ModifierPort interface {
	Modifier(ctx context.Context, threadID string) float64
}
