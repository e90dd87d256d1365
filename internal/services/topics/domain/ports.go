package domain

import "context"

// WriterPort mutates segment state for a thread
type WriterPort interface {
	// Open closes the thread's open segment if any and starts a new one
	Open(ctx context.Context, in OpenInput) (Segment, error)
}

// ReaderPort defines the read interface for segments
type ReaderPort interface {
	List(ctx context.Context, in ListInput) ([]Segment, error)
	StatsDaily(ctx context.Context, in StatsInput) ([]DailyRow, error)
}
