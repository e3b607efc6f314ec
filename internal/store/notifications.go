// internal/store/notifications.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"candidate-tracker/internal/models"
)

type NotificationStore struct {
	db *sql.DB
}

func NewNotificationStore(db *sql.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// ListRecent returns the most recent notifications joined with the candidate
// name. The join is LEFT so notifications survive candidate deletion.
func (s *NotificationStore) ListRecent(ctx context.Context, limit int) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT n.id, n.candidate_id, n.message, n.is_read, n.created_at, c.name
		FROM notifications n
		LEFT JOIN candidates c ON n.candidate_id = c.id
		ORDER BY n.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var candidateID sql.NullInt64
		var candidateName sql.NullString

		err := rows.Scan(&n.ID, &candidateID, &n.Message, &n.IsRead, &n.CreatedAt, &candidateName)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		if candidateID.Valid {
			n.CandidateID = &candidateID.Int64
		}
		if candidateName.Valid {
			n.CandidateName = &candidateName.String
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flips is_read on one notification. Unknown ids are a silent no-op.
func (s *NotificationStore) MarkRead(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
