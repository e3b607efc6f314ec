// internal/service/candidates.go
package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/common/metrics"
	"candidate-tracker/internal/models"
	"candidate-tracker/internal/store"
)

// ChangedBy is the fixed actor recorded on every status transition. There is
// no authentication in this system.
const ChangedBy = "System Admin"

// CandidateService owns the registration and status-transition workflows plus
// the candidate read operations.
type CandidateService struct {
	candidates *store.CandidateStore
	history    *store.HistoryStore
	logger     logger.Logger
}

func NewCandidateService(candidates *store.CandidateStore, history *store.HistoryStore, log logger.Logger) *CandidateService {
	return &CandidateService{
		candidates: candidates,
		history:    history,
		logger:     log.WithFields(map[string]interface{}{"component": "candidate-service"}),
	}
}

// List returns candidates matching the optional filters, newest first.
func (s *CandidateService) List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, error) {
	candidates, err := s.candidates.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list candidates", err)
	}
	return candidates, nil
}

// Get fetches one candidate by id.
func (s *CandidateService) Get(ctx context.Context, id int64) (*models.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("candidate %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to fetch candidate", err)
	}
	return candidate, nil
}

// Register runs the registration workflow: validate, enforce email
// uniqueness, insert the candidate with its registration notification, and
// return the stored row.
func (s *CandidateService) Register(ctx context.Context, input models.RegistrationInput) (*models.Candidate, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	exists, err := s.candidates.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("email uniqueness check failed", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(fmt.Sprintf("candidate with email %s already exists", input.Email))
	}

	message := fmt.Sprintf("New candidate registered: %s for %s", input.Name, input.Position)

	candidate, err := s.candidates.Create(ctx, input, message)
	if errors.Is(err, store.ErrDuplicateEmail) {
		// Insert raced with another registration for the same email.
		return nil, apperrors.NewConflictError(fmt.Sprintf("candidate with email %s already exists", input.Email))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to register candidate", err)
	}

	metrics.CandidatesRegistered.Inc()
	metrics.NotificationsCreated.Inc()
	s.logger.Info("candidate registered", map[string]interface{}{
		"candidateId": candidate.ID,
		"position":    candidate.Position,
	})

	return candidate, nil
}

// UpdateStatus runs the transition workflow. Any status may move to any
// other, including a self-transition; the update is unconditional.
func (s *CandidateService) UpdateStatus(ctx context.Context, id int64, status string) (string, error) {
	if err := validateStatus(status); err != nil {
		return "", err
	}

	name, position, err := s.candidates.GetNamePosition(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("candidate %d not found", id))
	}
	if err != nil {
		return "", apperrors.NewInternalError("failed to fetch candidate", err)
	}

	notes := fmt.Sprintf("Status changed to %s", status)
	notification := fmt.Sprintf("Application %s for %s - %s", status, name, position)

	err = s.candidates.UpdateStatus(ctx, id, status, ChangedBy, notes, notification)
	if errors.Is(err, store.ErrNotFound) {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("candidate %d not found", id))
	}
	if err != nil {
		return "", apperrors.NewInternalError("failed to update status", err)
	}

	metrics.StatusTransitions.WithLabelValues(status).Inc()
	metrics.NotificationsCreated.Inc()
	s.logger.Info("status transition", map[string]interface{}{
		"candidateId": id,
		"status":      status,
	})

	return status, nil
}

// Delete removes one candidate.
func (s *CandidateService) Delete(ctx context.Context, id int64) error {
	err := s.candidates.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NewNotFoundError(fmt.Sprintf("candidate %d not found", id))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to delete candidate", err)
	}

	s.logger.Info("candidate deleted", map[string]interface{}{"candidateId": id})
	return nil
}

// History returns the audit trail for one candidate, newest first.
func (s *CandidateService) History(ctx context.Context, id int64) ([]models.ApplicationHistory, error) {
	history, err := s.history.ListByCandidate(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list history", err)
	}
	return history, nil
}
