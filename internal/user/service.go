// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"farway_backend/internal/common"
	"farway_backend/internal/filestorage"
	"farway_backend/internal/shared"

	"go.uber.org/zap"
)

// Service defines the user directory business logic consumed by handlers and
// by other modules.
type Service interface {
	shared.Directory
	CreateInitialProfile(ctx context.Context, profile *shared.UserProfile) error
	ListByRole(ctx context.Context, role string) ([]shared.UserProfile, error)
	UpdateProfile(ctx context.Context, uid string, req UpdateProfileRequest) (*shared.UserProfile, error)
	UploadProfileImage(ctx context.Context, uid string, fileHeader *multipart.FileHeader) (*shared.UserProfile, error)
}

// ServiceImplementation implements Service on top of the repository and the
// blob store.
type ServiceImplementation struct {
	repo    Repository
	storage *filestorage.Service
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)
var _ shared.Directory = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, storage *filestorage.Service, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// CreateInitialProfile writes the profile document right after account
// creation. uid, email and role come from registration and are never
// rewritten afterwards.
func (s *ServiceImplementation) CreateInitialProfile(ctx context.Context, profile *shared.UserProfile) error {
	if profile.UID == "" || profile.Email == "" || profile.Role == "" {
		return common.ErrBadRequest.WithDetails("Initial profile requires uid, email and role.")
	}
	if !common.ValidRole(profile.Role) {
		return common.ErrBadRequest.WithDetails("Unknown role: " + profile.Role)
	}

	dbUser := SharedToDB(profile)
	now := time.Now()
	dbUser.CreatedAt = now
	dbUser.UpdatedAt = now

	if err := s.repo.Put(ctx, dbUser); err != nil {
		s.logger.Error("Failed to write initial profile", zap.Error(err), zap.String("uid", profile.UID))
		return err
	}
	s.logger.Info("Initial profile created", zap.String("uid", profile.UID), zap.String("role", profile.Role))
	return nil
}

// GetProfile retrieves a single profile by uid.
func (s *ServiceImplementation) GetProfile(ctx context.Context, uid string) (*shared.UserProfile, error) {
	dbUser, err := s.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info("Profile not found", zap.String("uid", uid))
		} else {
			s.logger.Error("Error fetching profile", zap.Error(err), zap.String("uid", uid))
		}
		return nil, err
	}
	return DBToShared(dbUser), nil
}

// ListByRole returns every profile with the given role, unordered.
func (s *ServiceImplementation) ListByRole(ctx context.Context, role string) ([]shared.UserProfile, error) {
	if !common.ValidRole(role) {
		return nil, common.ErrBadRequest.WithDetails("Unknown role: " + role)
	}
	dbUsers, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		s.logger.Error("Role query failed", zap.Error(err), zap.String("role", role))
		return nil, err
	}
	profiles := make([]shared.UserProfile, 0, len(dbUsers))
	for i := range dbUsers {
		profiles = append(profiles, *DBToShared(&dbUsers[i]))
	}
	return profiles, nil
}

// UpdateProfile applies a profile edit as a full-document replace: the
// current document is read, the editable fields are overlaid, and the result
// is written back. uid, email, role and the creation timestamp are preserved.
// Languages and interests arrive as comma-separated free text and are split,
// trimmed and cleaned before persisting.
func (s *ServiceImplementation) UpdateProfile(ctx context.Context, uid string, req UpdateProfileRequest) (*shared.UserProfile, error) {
	dbUser, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	dbUser.FirstName = req.FirstName
	dbUser.LastName = req.LastName
	dbUser.NationalID = req.NationalID
	dbUser.Phone = req.Phone
	dbUser.BirthDate = req.BirthDate
	dbUser.Gender = req.Gender
	dbUser.GenderOther = req.GenderOther
	dbUser.Description = req.Description
	dbUser.Location = req.Location
	dbUser.Languages = common.SplitCommaList(req.Languages)
	dbUser.Interests = common.SplitCommaList(req.Interests)
	dbUser.UpdatedAt = time.Now()

	if err := s.repo.Put(ctx, dbUser); err != nil {
		s.logger.Error("Failed to save profile edit", zap.Error(err), zap.String("uid", uid))
		return nil, err
	}
	s.logger.Info("Profile updated", zap.String("uid", uid))
	return DBToShared(dbUser), nil
}

// UploadProfileImage stores the image blob, then persists the returned URL on
// the profile. These are two separate steps: the blob store never touches the
// document itself.
func (s *ServiceImplementation) UploadProfileImage(ctx context.Context, uid string, fileHeader *multipart.FileHeader) (*shared.UserProfile, error) {
	dbUser, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.SaveProfileImage(uid, fileHeader)
	if err != nil {
		s.logger.Error("Profile image upload failed", zap.Error(err), zap.String("uid", uid))
		return nil, common.ErrInternalServer.WithDetails("Image upload failed.")
	}

	dbUser.PhotoURL = url
	dbUser.UpdatedAt = time.Now()
	if err := s.repo.Put(ctx, dbUser); err != nil {
		s.logger.Error("Failed to persist photo URL after upload", zap.Error(err), zap.String("uid", uid))
		return nil, err
	}
	s.logger.Info("Profile image updated", zap.String("uid", uid), zap.String("url", url))
	return DBToShared(dbUser), nil
}
