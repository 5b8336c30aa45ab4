// File: internal/firebase/service.go
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"farway_backend/internal/common"
	"farway_backend/internal/config"
)

const identityToolkitSignInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Service wraps the identity provider: account creation and password
// verification live in Firebase, never locally. The Admin SDK covers
// sign-up and token revocation; password sign-in has no Admin SDK surface,
// so it goes through the Identity Toolkit REST API with the web API key.
type Service struct {
	authClient *auth.Client
	httpClient *http.Client
	webAPIKey  string
	logger     *zap.Logger
}

// NewService initializes the Firebase Admin SDK and creates a new Service.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error

	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// If ProjectID is not specified in config, let SDK infer from credentials
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}

	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &Service{
		authClient: authClient,
		httpClient: http.DefaultClient,
		webAPIKey:  cfg.FirebaseWebAPIKey,
		logger:     logger,
	}, nil
}

// CreateAccount registers a new identity with the provider and returns its
// uid. The uid is opaque, assigned by the provider, and immutable; the caller
// is responsible for writing the initial user profile afterwards.
func (s *Service) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			s.logger.Info("Account creation rejected: email already registered", zap.String("email", email))
			return "", common.ErrConflict.WithDetails("An account with this email already exists.")
		}
		s.logger.Error("Firebase account creation failed", zap.Error(err))
		return "", common.ErrInternalServer.WithDetails("Account could not be created.")
	}
	if record == nil || record.UID == "" {
		// Provider answered without an identity; treat as creation failure.
		s.logger.Error("Firebase returned no identity for created account", zap.String("email", email))
		return "", common.ErrInternalServer.WithDetails("Account could not be created.")
	}

	s.logger.Info("Account created", zap.String("uid", record.UID))
	return record.UID, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

// VerifyPassword checks an email/password pair against the identity provider
// and returns the account uid. Any provider-side rejection surfaces as
// invalid credentials; the distinction between wrong password, unknown user
// and disabled account is deliberately not exposed.
func (s *Service) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return "", fmt.Errorf("encoding sign-in request: %w", err)
	}

	endpoint := identityToolkitSignInURL + "?key=" + url.QueryEscape(s.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Identity Toolkit sign-in call failed", zap.Error(err))
		return "", common.ErrInternalServer.WithDetails("Sign-in is currently unavailable.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Info("Password verification rejected by provider",
			zap.String("email", email),
			zap.Int("status", resp.StatusCode),
		)
		return "", common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}

	var parsed signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logger.Error("Failed to decode Identity Toolkit response", zap.Error(err))
		return "", common.ErrInternalServer.WithDetails("Sign-in is currently unavailable.")
	}
	if parsed.LocalID == "" {
		return "", common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}

	s.logger.Debug("Password verified", zap.String("uid", parsed.LocalID))
	return parsed.LocalID, nil
}

// RevokeRefreshTokens revokes all refresh tokens for a given user. Sign-out
// only invalidates credentials; persisted data is untouched.
func (s *Service) RevokeRefreshTokens(ctx context.Context, uid string) error {
	if err := s.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		s.logger.Error("Failed to revoke refresh tokens", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	s.logger.Info("Successfully revoked refresh tokens for user", zap.String("uid", uid))
	return nil
}
