// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"

	"farway_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for user directory operations: keyed get,
// full-document replace and an equality query by role. There is no partial
// update and no optimistic concurrency; a Put is last-writer-wins.
type Repository interface {
	Get(ctx context.Context, uid string) (*User, error)
	Put(ctx context.Context, profile *User) error
	ListByRole(ctx context.Context, role string) ([]User, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM user repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Get retrieves a profile document by uid. The decode fails closed: a stored
// document missing any of its required identity fields is reported as an
// error instead of being silently defaulted.
func (r *gormRepository) Get(ctx context.Context, uid string) (*User, error) {
	var profile User
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("No profile exists for this user.")
		}
		return nil, err
	}
	if profile.UID == "" || profile.Email == "" || profile.Role == "" {
		return nil, common.ErrInternalServer.WithDetails("Stored profile is missing required fields.")
	}
	return &profile, nil
}

// Put replaces the whole profile document at its uid. Save on a primary-keyed
// record writes every column, which gives the full-document-replace contract.
func (r *gormRepository) Put(ctx context.Context, profile *User) error {
	if profile.UID == "" || profile.Email == "" || profile.Role == "" {
		return common.ErrBadRequest.WithDetails("Profile is missing required fields (uid, email, role).")
	}
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))

	err := r.db.WithContext(ctx).Save(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithDetails("A profile with this email already exists.")
		}
		return err
	}
	return nil
}

// ListByRole returns every profile whose role equals the given value.
// The result is unordered and an empty list is a valid, non-error outcome.
func (r *gormRepository) ListByRole(ctx context.Context, role string) ([]User, error) {
	var profiles []User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
