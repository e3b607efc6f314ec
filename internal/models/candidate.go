// internal/models/candidate.go
package models

import "time"

// Candidate statuses. Transitions are unconstrained: any status may move to
// any other, including a self-transition.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	// StatusFilterAll is the list-endpoint sentinel meaning "no status filter".
	StatusFilterAll = "all"
)

// IsValidStatus reports whether s is one of the three candidate statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Candidate struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	Resume      *string   `json:"resume"`
	CoverLetter *string   `json:"coverLetter"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateFilter holds the optional list-endpoint filters.
type CandidateFilter struct {
	Status string
	Search string
}

// RegistrationInput is the POST /candidates request body.
type RegistrationInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Position    string  `json:"position"`
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"coverLetter"`
}

// DashboardStats is the single-row aggregation for GET /dashboard/stats.
type DashboardStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
