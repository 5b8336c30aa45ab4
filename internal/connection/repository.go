// File: internal/connection/repository.go
package connection

import (
	"context"
	"errors"

	"farway_backend/internal/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository defines persistence for friend request records.
type Repository interface {
	// Create writes the record at its composite key, overwriting any
	// existing record for the same sender/receiver pair.
	Create(ctx context.Context, record *FriendRequest) error
	FindByID(ctx context.Context, id string) (*FriendRequest, error)
	ListPendingFor(ctx context.Context, receiverUID string) ([]FriendRequest, error)
	// ListPendingCreatedBefore returns every pending request created before
	// the cutoff (epoch millis), across all receivers.
	ListPendingCreatedBefore(ctx context.Context, cutoff int64) ([]FriendRequest, error)
	// ListAll returns every record in the store, unpaginated. Trip and Tour
	// projections filter the result by direction themselves.
	ListAll(ctx context.Context) ([]FriendRequest, error)
	// UpdateStatus stores the raw status string on an existing record.
	// Returns common.ErrNotFound if no record exists under the id.
	UpdateStatus(ctx context.Context, id string, status string) error
}

type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMRepository creates a new GORM-based repository for friend requests.
func NewGORMRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{db: db, logger: logger.Named("ConnectionRepository")}
}

func (r *gormRepository) Create(ctx context.Context, record *FriendRequest) error {
	if record.ID == "" || record.SenderUID == "" || record.ReceiverUID == "" {
		return common.ErrInternalServer.WithDetails("Friend request record is missing required fields.")
	}
	// Save upserts by primary key, so a repeated send replaces the prior
	// record instead of duplicating it.
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		r.logger.Error("Failed to save friend request", zap.String("id", record.ID), zap.Error(err))
		return common.ErrInternalServer.WithDetails("Failed to save connection request.")
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*FriendRequest, error) {
	var record FriendRequest
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Connection request not found.")
		}
		r.logger.Error("Failed to find friend request by ID", zap.String("id", id), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to retrieve connection request.")
	}
	return &record, nil
}

func (r *gormRepository) ListPendingFor(ctx context.Context, receiverUID string) ([]FriendRequest, error) {
	var records []FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_uid = ? AND LOWER(status) = ?", receiverUID, string(StatusPending)).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		r.logger.Error("Failed to list pending friend requests", zap.String("receiverUID", receiverUID), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to list pending connection requests.")
	}
	return records, nil
}

func (r *gormRepository) ListPendingCreatedBefore(ctx context.Context, cutoff int64) ([]FriendRequest, error) {
	var records []FriendRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(status) = ? AND created_at < ?", string(StatusPending), cutoff).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		r.logger.Error("Failed to list stale pending friend requests", zap.Int64("cutoff", cutoff), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to list stale pending connection requests.")
	}
	return records, nil
}

func (r *gormRepository) ListAll(ctx context.Context) ([]FriendRequest, error) {
	var records []FriendRequest
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		r.logger.Error("Failed to list friend requests", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Failed to list connection requests.")
	}
	return records, nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&FriendRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("Failed to update friend request status", zap.String("id", id), zap.Error(result.Error))
		return common.ErrInternalServer.WithDetails("Failed to update connection request status.")
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Connection request not found.")
	}
	return nil
}
