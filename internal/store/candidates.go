// internal/store/candidates.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"candidate-tracker/internal/models"
)

var (
	ErrNotFound       = errors.New("NOT_FOUND")
	ErrDuplicateEmail = errors.New("DUPLICATE_EMAIL")
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

const candidateColumns = `id, name, email, phone, position, resume, cover_letter, status, applied_date, created_at`

// CandidateStore executes candidate SQL against the shared pool.
type CandidateStore struct {
	db *sql.DB
}

func NewCandidateStore(db *sql.DB) *CandidateStore {
	return &CandidateStore{db: db}
}

// buildListQuery constructs the filtered candidate listing statement. User
// values travel only as bound parameters, never in the query text.
func buildListQuery(f models.CandidateFilter) (string, []interface{}) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`

	var conditions []string
	var args []interface{}

	if f.Status != "" && f.Status != models.StatusFilterAll {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR position ILIKE $%d)", p, p, p))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"
	return query, args
}

// List returns candidates matching the optional status and search filters,
// newest first, without pagination.
func (s *CandidateStore) List(ctx context.Context, f models.CandidateFilter) ([]models.Candidate, error) {
	query, args := buildListQuery(f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// GetByID fetches one candidate or ErrNotFound.
func (s *CandidateStore) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// GetNamePosition fetches just the fields the transition workflow needs.
func (s *CandidateStore) GetNamePosition(ctx context.Context, id int64) (string, string, error) {
	var name, position string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, position FROM candidates WHERE id = $1`, id).Scan(&name, &position)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("get candidate name: %w", err)
	}
	return name, position, nil
}

// EmailExists reports whether a candidate with this email is already present.
func (s *CandidateStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email check: %w", err)
	}
	return exists, nil
}

// Create inserts the candidate row and its registration notification in one
// transaction, then re-reads and returns the full row. Status defaults to
// pending and applied_date is set server side.
func (s *CandidateStore) Create(ctx context.Context, input models.RegistrationInput, notification string) (*models.Candidate, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registration tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO candidates (name, email, phone, position, resume, cover_letter, status, applied_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE)
		RETURNING id`,
		input.Name, input.Email, input.Phone, input.Position,
		input.Resume, input.CoverLetter, models.StatusPending,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert candidate: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notifications (candidate_id, message) VALUES ($1, $2)`,
		id, notification)
	if err != nil {
		return nil, fmt.Errorf("insert registration notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration tx: %w", err)
	}

	return s.GetByID(ctx, id)
}

// UpdateStatus performs the transition workflow writes in one transaction:
// status update, history append, notification append, in that order.
func (s *CandidateStore) UpdateStatus(ctx context.Context, id int64, status, changedBy, notes, notification string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transition tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE candidates SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO application_history (candidate_id, status, changed_by, notes)
		VALUES ($1, $2, $3, $4)`,
		id, status, changedBy, notes)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notifications (candidate_id, message) VALUES ($1, $2)`,
		id, notification)
	if err != nil {
		return fmt.Errorf("insert transition notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transition tx: %w", err)
	}
	return nil
}

// Delete removes one candidate. History and notification references follow
// the schema's FK actions.
func (s *CandidateStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete candidate rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row rowScanner) (*models.Candidate, error) {
	var c models.Candidate
	var resume, coverLetter sql.NullString

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position,
		&resume, &coverLetter, &c.Status, &c.AppliedDate, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if resume.Valid {
		c.Resume = &resume.String
	}
	if coverLetter.Valid {
		c.CoverLetter = &coverLetter.String
	}
	return &c, nil
}
