// Package domain holds DTOs for focus session http contracts
package domain

// SetRequest starts or extends a focus session for a thread
type SetRequest struct {
	ThreadID   string  `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
	Modifier   float64 `json:"modifier" validate:"required,gt=0,max=10" example:"1.5"`
	TTLSeconds int     `json:"ttl_seconds,omitempty" validate:"omitempty,min=1,max=86400" example:"3600"`
}

// ThreadRequest addresses a single thread
type ThreadRequest struct {
	ThreadID string `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
}

// SessionResponse describes an active focus session
type SessionResponse struct {
	ThreadID string  `json:"thread_id" example:"thread-42"`
	Active   bool    `json:"active" example:"true"`
	Modifier float64 `json:"modifier,omitempty" example:"1.5"`
	SetAt    string  `json:"set_at,omitempty" example:"2025-08-14T09:30:00Z"`
}

// ClearResponse confirms a session end
type ClearResponse struct {
	ThreadID string `json:"thread_id" example:"thread-42"`
	Cleared  bool   `json:"cleared" example:"true"`
}
