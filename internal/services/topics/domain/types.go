// Package domain defines core types and interfaces for topic segments
package domain

import "time"

// Segment is a contiguous run of messages between two boundaries
type Segment struct {
	ID        string // uuid
	ThreadID  string
	StartedAt time.Time
	EndedAt   *time.Time // nil while the segment is open

	// OpeningMessageID is the ledger row that fired the boundary, empty for
	// the implicit first segment of a thread
	OpeningMessageID string
	Confidence       float64
}

// OpenInput starts a new segment and closes the currently open one
type OpenInput struct {
	ThreadID         string    // required
	StartedAt        time.Time // zero means now
	OpeningMessageID string    // optional
	Confidence       float64
}

// ListInput filters segments for a thread
type ListInput struct {
	ThreadID string    // required
	Since    time.Time // inclusive; zero = open
	Until    time.Time // exclusive; zero = open
	Limit    int       // hard-capped in service
	OpenOnly bool
}

// StatsInput buckets boundary activity by day
type StatsInput struct {
	Since    time.Time
	Until    time.Time
	ThreadID string // optional filter
}

// DailyRow is one day of boundary activity
type DailyRow struct {
	Day           string  `json:"day"`
	Segments      int64   `json:"segments"`
	Threads       int64   `json:"threads"`
	AvgConfidence float64 `json:"avg_confidence"`
}
