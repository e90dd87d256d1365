// Package domain defines the core types and interfaces for the boundary service
package domain

import (
	"time"

	core "chalie/internal/core/boundary"
)

// DecideInput carries one conversation message through the detector
type DecideInput struct {
	ThreadID       string    // required
	Embedding      []float64 // required; unit-normalized defensively downstream
	BestSimilarity float64   // best memory similarity in [0,1]
	Text           string    // optional; recorded in the ledger when present
	At             time.Time // zero means now; ledger timestamp only
}

// Decision is the outcome for one message
type Decision struct {
	ThreadID string
	Result   core.Result

	// MessageID is the ledger row written for this message, empty when the
	// ledger write was skipped or failed
	MessageID string

	// SegmentID is the topic segment opened by this decision, empty unless
	// a boundary fired and the segment write succeeded
	SegmentID string
}
