// File: internal/auth/interfaces.go
package auth

import "context"

// IdentityProvider abstracts the external identity backend: account creation,
// password verification and session revocation. The firebase package provides
// the production implementation; tests substitute a mock.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	VerifyPassword(ctx context.Context, email, password string) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}
