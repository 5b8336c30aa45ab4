// File: internal/shared/core.go
package shared

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session carries the identity of the caller for the duration of one request.
// It is resolved once by the auth middleware and handed to services
// explicitly; nothing in the codebase reads identity from a global.
type Session struct {
	UID   string
	Email string
	Role  string
}

// SignedIn reports whether the session holds an identity.
func (s Session) SignedIn() bool {
	return s.UID != ""
}

// UserProfile is the cross-package view of a user document. Optional fields
// are empty strings / nil slices when absent; clients render a placeholder.
type UserProfile struct {
	UID         string
	Email       string
	Role        string
	FirstName   string
	LastName    string
	NationalID  string
	Phone       string
	BirthDate   string
	Gender      string
	GenderOther string
	Description string
	Location    string
	Languages   []string
	Interests   []string
	PhotoURL    string
	CreatedAt   time.Time
}

// FullName joins first and last name, tolerating either being absent.
func (p *UserProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Directory is the read side of the user directory that other modules need:
// a keyed profile lookup. The user package provides the implementation.
type Directory interface {
	GetProfile(ctx context.Context, uid string) (*UserProfile, error)
}

// TokenResponse represents the response containing JWT tokens.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// Claims represents the JWT claims structure.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for JWT operations.
type TokenService interface {
	GenerateAccessToken(profile *UserProfile) (string, time.Time, error)
	GenerateRefreshToken(profile *UserProfile) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
	ParseRefreshToken(refreshTokenString string) (*Claims, error)
}
