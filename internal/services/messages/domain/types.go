// Package domain defines core types and interfaces for the message ledger
package domain

import "time"

// AfterKey supports stable keyset pagination over (created_at, id)
type AfterKey struct {
	CreatedAt time.Time
	ID        string // uuid
}

// WriteInput is the per-message payload recorded in the ledger
type WriteInput struct {
	ThreadID       string    // required
	Text           string    // raw message text; normalized on write
	BestSimilarity float64   // best memory similarity in [0,1]
	IsBoundary     bool      // decision taken for this message
	Accumulator    float64   // accumulator after this message
	Boundary       float64   // threshold in effect for this message
	Confidence     float64   // decision confidence
	CreatedAt      time.Time // zero means now
}

// Row is the stored message view shared across consumers
type Row struct {
	ID             string // uuid
	ThreadID       string
	CreatedAt      time.Time
	Text           string
	TextNorm       string
	BestSimilarity float64
	IsBoundary     bool
	Accumulator    float64
	Boundary       float64
	Confidence     float64
}

// ListInput defines the input parameters for listing ledger rows
type ListInput struct {
	ThreadID string    // required
	Since    time.Time // inclusive; zero = open
	Until    time.Time // exclusive; zero = open
	After    AfterKey  // zero value = from start
	Limit    int       // hard-capped in service

	// BoundariesOnly restricts to rows where a boundary fired
	BoundariesOnly bool
}
