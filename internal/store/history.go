// internal/store/history.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"candidate-tracker/internal/models"
)

// HistoryStore reads the append-only audit trail. Writes happen only inside
// the transition transaction in CandidateStore.
type HistoryStore struct {
	db *sql.DB
}

func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// ListByCandidate returns all history rows for a candidate, newest first.
func (s *HistoryStore) ListByCandidate(ctx context.Context, candidateID int64) ([]models.ApplicationHistory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, candidate_id, status, changed_by, notes, created_at
		FROM application_history
		WHERE candidate_id = $1
		ORDER BY created_at DESC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	history := []models.ApplicationHistory{}
	for rows.Next() {
		var h models.ApplicationHistory
		if err := rows.Scan(&h.ID, &h.CandidateID, &h.Status, &h.ChangedBy, &h.Notes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
