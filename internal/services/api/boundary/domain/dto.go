// Package domain holds DTOs for boundary http contracts
package domain

import core "chalie/internal/core/boundary"

// DecideRequest runs one message through the detector
type DecideRequest struct {
	ThreadID       string    `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
	Embedding      []float64 `json:"embedding" validate:"required,min=1" example:"0.12,0.98"`
	BestSimilarity float64   `json:"best_similarity" validate:"min=0,max=1" example:"0.83"`
	Text           string    `json:"text,omitempty" validate:"omitempty,max=8192" example:"so, about that deploy"`
}

// DecideResponse is the boundary decision for one message
type DecideResponse struct {
	ThreadID string `json:"thread_id" example:"thread-42"`
	core.Result
	MessageID string `json:"message_id,omitempty" example:"8e7a4f0a-2c4f-4e0e-a37e-0b6e72f2f9d1"`
	SegmentID string `json:"segment_id,omitempty" example:"d6f3b0cb-55a0-4890-b6b5-0d1a1f9a8f90"`
}

// ThreadRequest addresses a single thread
type ThreadRequest struct {
	ThreadID string `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
}

// StateResponse exposes the persisted detector state for inspection
type StateResponse struct {
	ThreadID string      `json:"thread_id" example:"thread-42"`
	Found    bool        `json:"found" example:"true"`
	State    *core.State `json:"state,omitempty"`
}

// ResetResponse confirms a state reset
type ResetResponse struct {
	ThreadID string `json:"thread_id" example:"thread-42"`
	Reset    bool   `json:"reset" example:"true"`
}
