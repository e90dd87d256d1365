// Package domain holds DTOs for message ledger http contracts
package domain

// ListRequest pages through the decision ledger of a thread
type ListRequest struct {
	ThreadID string `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"200"`

	// After continues from a previous page
	AfterID        string `json:"after_id,omitempty" example:"8e7a4f0a-2c4f-4e0e-a37e-0b6e72f2f9d1"`
	AfterCreatedAt string `json:"after_created_at,omitempty" example:"2025-08-14T09:30:00Z"`

	BoundariesOnly bool `json:"boundaries_only,omitempty" example:"false"`
}

// MessageRow is one ledger row in the list output
type MessageRow struct {
	ID             string  `json:"id"`
	ThreadID       string  `json:"thread_id"`
	CreatedAt      string  `json:"created_at" example:"2025-08-14T09:30:00Z"`
	Text           string  `json:"text"`
	TextNorm       string  `json:"text_norm"`
	BestSimilarity float64 `json:"best_similarity" example:"0.83"`
	IsBoundary     bool    `json:"is_boundary" example:"false"`
	Accumulator    float64 `json:"accumulator" example:"1.2"`
	Boundary       float64 `json:"boundary" example:"2.5"`
	Confidence     float64 `json:"confidence" example:"0.48"`
}

// ListResponse is a page of ledger rows plus the next cursor
type ListResponse struct {
	Rows          []MessageRow `json:"rows"`
	NextID        string       `json:"next_id,omitempty"`
	NextCreatedAt string       `json:"next_created_at,omitempty"`
}
