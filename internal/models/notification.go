// internal/models/notification.go
package models

import "time"

type Notification struct {
	ID          int64     `json:"id"`
	CandidateID *int64    `json:"candidate_id"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`

	// CandidateName is joined from candidates and is nil when the candidate
	// has been deleted.
	CandidateName *string `json:"candidate_name"`

	// Time is the human-relative age string, filled by the service layer.
	Time string `json:"time,omitempty"`
}
