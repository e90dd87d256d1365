// Package domain defines core types and interfaces for focus sessions
package domain

import "time"

// Session is an active focus window for a thread
// while it lasts, the boundary ceiling is raised by Modifier
type Session struct {
	ThreadID string    `json:"thread_id"`
	Modifier float64   `json:"modifier"`
	SetAt    time.Time `json:"set_at"`
}

// SetInput starts or extends a focus session
type SetInput struct {
	ThreadID string        // required
	Modifier float64       // required, positive
	TTL      time.Duration // zero means the configured default
}
