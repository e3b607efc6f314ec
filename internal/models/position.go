// internal/models/position.go
package models

// Position is a job opening candidates apply against. Read-only from this
// system's perspective.
type Position struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}
