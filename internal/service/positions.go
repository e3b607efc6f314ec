// internal/service/positions.go
package service

import (
	"context"

	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/models"
	"candidate-tracker/internal/store"
)

type PositionService struct {
	positions *store.PositionStore
}

func NewPositionService(positions *store.PositionStore) *PositionService {
	return &PositionService{positions: positions}
}

// List returns active positions ordered by title.
func (s *PositionService) List(ctx context.Context) ([]models.Position, error) {
	positions, err := s.positions.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list positions", err)
	}
	return positions, nil
}
