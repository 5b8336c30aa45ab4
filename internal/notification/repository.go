package notification

import (
	"context"
	"errors"
	"fmt"
	"farway_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByUserUID(ctx context.Context, userUID string) ([]Notification, error)
	FindByID(ctx context.Context, notificationID uuid.UUID, userUID string) (*Notification, error) // userUID for ownership check
	MarkAsRead(ctx context.Context, notificationID uuid.UUID, userUID string) error
	MarkAllAsRead(ctx context.Context, userUID string) (int64, error) // Return count of marked notifications
}

// GORMRepository implements the Repository interface using GORM.
type GORMRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM notification repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &GORMRepository{db: db}
}

// Create inserts a new notification into the database.
func (r *GORMRepository) Create(ctx context.Context, notification *Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByUserUID retrieves the notifications for a specific user, newest first.
func (r *GORMRepository) GetByUserUID(ctx context.Context, userUID string) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Where("user_uid = ?", userUID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("fetching notifications for user %s failed: %w", userUID, err)
	}
	return notifications, nil
}

// FindByID retrieves a specific notification by its ID, ensuring it belongs to the provided userUID.
func (r *GORMRepository) FindByID(ctx context.Context, notificationID uuid.UUID, userUID string) (*Notification, error) {
	var notification Notification
	err := r.db.WithContext(ctx).Where("id = ? AND user_uid = ?", notificationID, userUID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Notification not found or not owned by user.")
		}
		return nil, fmt.Errorf("failed to find notification %s for user %s: %w", notificationID, userUID, err)
	}
	return &notification, nil
}

// MarkAsRead marks a specific notification as read for a user.
// It first verifies ownership using FindByID.
func (r *GORMRepository) MarkAsRead(ctx context.Context, notificationID uuid.UUID, userUID string) error {
	_, err := r.FindByID(ctx, notificationID, userUID)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND user_uid = ?", notificationID, userUID).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification %s as read for user %s: %w", notificationID, userUID, result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Notification not found, not owned by user, or already marked as read.")
	}
	return nil
}

// MarkAllAsRead marks all unread notifications for a user as read.
// It returns the count of notifications that were updated.
func (r *GORMRepository) MarkAllAsRead(ctx context.Context, userUID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_uid = ? AND is_read = ?", userUID, false).
		Updates(map[string]interface{}{"is_read": true})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read for user %s: %w", userUID, result.Error)
	}
	return result.RowsAffected, nil
}
