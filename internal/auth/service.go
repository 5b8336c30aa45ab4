// File: internal/auth/service.go
package auth

import (
	"context"

	"farway_backend/internal/shared"
	"farway_backend/internal/user"

	"go.uber.org/zap"
)

// Service defines the authentication flows: sign-up, sign-in, sign-out and
// session refresh. Identity is proven by the IdentityProvider; the profile
// itself lives in the user directory, and the session is carried by locally
// issued JWTs.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*shared.UserProfile, *shared.TokenResponse, error)
	Login(ctx context.Context, email, password string) (*shared.UserProfile, *shared.TokenResponse, error)
	Logout(ctx context.Context, uid string) error
	Refresh(ctx context.Context, refreshToken string) (*shared.TokenResponse, error)
}

// ServiceImplementation implements the Service interface.
type ServiceImplementation struct {
	identity     IdentityProvider
	users        user.Service
	tokenService shared.TokenService
	logger       *zap.Logger
}

// NewService creates a new auth service.
func NewService(
	identity IdentityProvider,
	users user.Service,
	tokenService shared.TokenService,
	logger *zap.Logger,
) *ServiceImplementation {
	return &ServiceImplementation{
		identity:     identity,
		users:        users,
		tokenService: tokenService,
		logger:       logger.Named("AuthService"),
	}
}

var _ Service = (*ServiceImplementation)(nil)

func (s *ServiceImplementation) Register(ctx context.Context, req RegisterRequest) (*shared.UserProfile, *shared.TokenResponse, error) {
	uid, err := s.identity.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, nil, err
	}

	profile := &shared.UserProfile{
		UID:       uid,
		Email:     req.Email,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.users.CreateInitialProfile(ctx, profile); err != nil {
		// The identity account exists but the profile write failed. Surface
		// the error; a retried registration reuses the account via login.
		s.logger.Error("Profile creation failed after identity sign-up",
			zap.String("uid", uid), zap.Error(err))
		return nil, nil, err
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User registered", zap.String("uid", uid), zap.String("role", req.Role))
	return profile, tokens, nil
}

func (s *ServiceImplementation) Login(ctx context.Context, email, password string) (*shared.UserProfile, *shared.TokenResponse, error) {
	uid, err := s.identity.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.users.GetProfile(ctx, uid)
	if err != nil {
		s.logger.Error("Profile missing for verified identity",
			zap.String("uid", uid), zap.Error(err))
		return nil, nil, err
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User logged in", zap.String("uid", uid))
	return profile, tokens, nil
}

func (s *ServiceImplementation) Logout(ctx context.Context, uid string) error {
	if err := s.identity.RevokeRefreshTokens(ctx, uid); err != nil {
		return err
	}
	s.logger.Info("User logged out", zap.String("uid", uid))
	return nil
}

func (s *ServiceImplementation) Refresh(ctx context.Context, refreshToken string) (*shared.TokenResponse, error) {
	claims, err := s.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.users.GetProfile(ctx, claims.UID)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(profile)
	if err != nil {
		return nil, err
	}
	return &shared.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		TokenType:    "Bearer",
	}, nil
}

func (s *ServiceImplementation) issueTokens(profile *shared.UserProfile) (*shared.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(profile)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(profile)
	if err != nil {
		return nil, err
	}
	return &shared.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		TokenType:    "Bearer",
	}, nil
}
