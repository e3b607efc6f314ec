// internal/service/notifications.go
package service

import (
	"context"

	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/models"
	"candidate-tracker/internal/store"
	"candidate-tracker/internal/timeago"
)

// notificationLimit caps the list endpoint. Clients poll; there is no push.
const notificationLimit = 50

type NotificationService struct {
	notifications *store.NotificationStore
	logger        logger.Logger
}

func NewNotificationService(notifications *store.NotificationStore, log logger.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        log.WithFields(map[string]interface{}{"component": "notification-service"}),
	}
}

// List returns the 50 most recent notifications, each annotated with a
// human-relative age string.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.notifications.ListRecent(ctx, notificationLimit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list notifications", err)
	}

	for i := range notifications {
		notifications[i].Time = timeago.Format(notifications[i].CreatedAt)
	}
	return notifications, nil
}

// MarkRead flips is_read on one notification. Unknown ids succeed silently.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return apperrors.NewInternalError("failed to mark notification read", err)
	}
	return nil
}
