// Package domain holds DTOs for topics http contracts
package domain

// TimeRange defines a start and end time for queries
// Times are ISO8601 dates
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// ListRequest lists segments for a thread
type ListRequest struct {
	ThreadID string     `json:"thread_id" validate:"required,min=1,max=200" example:"thread-42"`
	Range    *TimeRange `json:"range,omitempty"`
	Limit    int        `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"100"`
	OpenOnly bool       `json:"open_only,omitempty" example:"false"`
}

// SegmentRow is one topic segment in the list output
type SegmentRow struct {
	ID               string  `json:"id" example:"d6f3b0cb-55a0-4890-b6b5-0d1a1f9a8f90"`
	ThreadID         string  `json:"thread_id" example:"thread-42"`
	StartedAt        string  `json:"started_at" example:"2025-08-14T09:30:00Z"`
	EndedAt          string  `json:"ended_at,omitempty" example:"2025-08-14T11:02:00Z"`
	OpeningMessageID string  `json:"opening_message_id,omitempty"`
	Confidence       float64 `json:"confidence" example:"0.92"`
}

// StatsRequest buckets boundary activity by day
type StatsRequest struct {
	Range    TimeRange `json:"range"`
	ThreadID string    `json:"thread_id,omitempty" validate:"omitempty,min=1,max=200" example:"thread-42"`
}
