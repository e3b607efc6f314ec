// internal/store/positions.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"candidate-tracker/internal/models"
)

type PositionStore struct {
	db *sql.DB
}

func NewPositionStore(db *sql.DB) *PositionStore {
	return &PositionStore{db: db}
}

// ListActive returns open positions ordered by title.
func (s *PositionStore) ListActive(ctx context.Context) ([]models.Position, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, is_active FROM positions
		WHERE is_active = TRUE
		ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.Title, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
