package domain

import "context"

// WriterPort appends decision rows to the ledger
type WriterPort interface {
	// Insert records one message and returns its id
	Insert(ctx context.Context, in WriteInput) (string, error)
}

// ReaderPort defines the read interface for the ledger
type ReaderPort interface {
	// List returns up to Limit rows ordered by (created_at, id)
	List(ctx context.Context, in ListInput) (rows []Row, next AfterKey, err error)
}
