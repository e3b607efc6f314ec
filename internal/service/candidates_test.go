package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/models"
	"candidate-tracker/internal/store"
)

func newTestService(t *testing.T) (*CandidateService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewCandidateService(
		store.NewCandidateStore(db),
		store.NewHistoryStore(db),
		logger.NewTestLogger(t),
	)
	return svc, mock
}

func candidateRows(id int64, name, email, status string) *sqlmock.Rows {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "position", "resume", "cover_letter",
		"status", "applied_date", "created_at",
	}).AddRow(id, name, email, "+15550100", "Backend Engineer", nil, nil, status, created, created)
}

func TestRegister_Success(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM candidates WHERE email = \$1\)`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO candidates (.+) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(int64(7), "New candidate registered: Jane Doe for Backend Engineer").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM candidates WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(candidateRows(7, "Jane Doe", "jane@example.com", "pending"))

	candidate, err := svc.Register(context.Background(), models.RegistrationInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+15550100",
		Position: "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", candidate.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_MissingFieldsSkipStore(t *testing.T) {
	svc, mock := newTestService(t)

	tests := []struct {
		name  string
		input models.RegistrationInput
	}{
		{"empty name", models.RegistrationInput{Email: "a@b.c", Phone: "1", Position: "x"}},
		{"empty email", models.RegistrationInput{Name: "A", Phone: "1", Position: "x"}},
		{"empty phone", models.RegistrationInput{Name: "A", Email: "a@b.c", Position: "x"}},
		{"empty position", models.RegistrationInput{Name: "A", Email: "a@b.c", Phone: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			apiErr, ok := apperrors.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidationFailed, apiErr.Code)
			assert.Equal(t, 400, apiErr.Status)
		})
	}

	// No store round trips happened for any invalid input.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM candidates WHERE email = \$1\)`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := svc.Register(context.Background(), models.RegistrationInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+15550100",
		Position: "Backend Engineer",
	})

	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.Status)
	// No insert and no notification were attempted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_InvalidStatusLeavesStoreUntouched(t *testing.T) {
	svc, mock := newTestService(t)

	for _, status := range []string{"archived", "PENDING", "", "done"} {
		_, err := svc.UpdateStatus(context.Background(), 7, status)
		apiErr, ok := apperrors.AsAPIError(err)
		require.True(t, ok, "status %q", status)
		assert.Equal(t, 400, apiErr.Status)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT name, position FROM candidates WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "position"}).
			AddRow("Jane Doe", "Backend Engineer"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE candidates SET status = \$1 WHERE id = \$2`).
		WithArgs("approved", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO application_history`).
		WithArgs(int64(7), "approved", "System Admin", "Status changed to approved").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(int64(7), "Application approved for Jane Doe - Backend Engineer").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	status, err := svc.UpdateStatus(context.Background(), 7, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_UnknownCandidate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT name, position FROM candidates WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.UpdateStatus(context.Background(), 404, "rejected")
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(`DELETE FROM candidates WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), 99)
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
