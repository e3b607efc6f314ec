// internal/models/history.go
package models

import "time"

// ApplicationHistory is an append-only audit record: one row per status
// transition, never updated or deleted.
type ApplicationHistory struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	ChangedBy   string    `json:"changed_by"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
