package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for notifications.
type Service interface {
	CreateNotification(ctx context.Context, userUID string, notifType Type, message string, relatedRequestID *string) error
	GetNotificationsForUser(ctx context.Context, userUID string) ([]Notification, error)
	MarkNotificationAsRead(ctx context.Context, notificationID uuid.UUID, userUID string) error
	MarkAllUserNotificationsAsRead(ctx context.Context, userUID string) (int64, error)
}

// ServiceImplementation implements the Service interface.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("NotificationService"),
	}
}

var _ Service = (*ServiceImplementation)(nil)

func (s *ServiceImplementation) CreateNotification(ctx context.Context, userUID string, notifType Type, message string, relatedRequestID *string) error {
	notification := &Notification{
		ID:               uuid.New(),
		UserUID:          userUID,
		Type:             notifType,
		Message:          message,
		RelatedRequestID: relatedRequestID,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Error("Failed to create notification",
			zap.String("userUID", userUID),
			zap.String("type", string(notifType)),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *ServiceImplementation) GetNotificationsForUser(ctx context.Context, userUID string) ([]Notification, error) {
	return s.repo.GetByUserUID(ctx, userUID)
}

func (s *ServiceImplementation) MarkNotificationAsRead(ctx context.Context, notificationID uuid.UUID, userUID string) error {
	return s.repo.MarkAsRead(ctx, notificationID, userUID)
}

func (s *ServiceImplementation) MarkAllUserNotificationsAsRead(ctx context.Context, userUID string) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userUID)
}
