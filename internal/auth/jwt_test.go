package auth

import (
	"testing"
	"time"

	"farway_backend/internal/config"
	"farway_backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() shared.TokenService {
	cfg := &config.Config{
		JWTSecretKey:                "test-secret-key-for-unit-tests",
		JWTAccessTokenExpiryMinutes: 15 * time.Minute,
		JWTRefreshTokenExpiryDays:   7 * 24 * time.Hour,
	}
	return NewJWTService(cfg, zap.NewNop())
}

func testProfile() *shared.UserProfile {
	return &shared.UserProfile{
		UID:   "firebase-uid-1",
		Email: "hanna@example.com",
		Role:  "member",
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, expiresAt, err := svc.GenerateAccessToken(testProfile())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims.UID)
	assert.Equal(t, "hanna@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateRefreshToken(testProfile())
	require.NoError(t, err)

	claims, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims.UID)
	assert.NotEmpty(t, claims.ID, "refresh tokens carry a unique JTI")
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateAccessToken(testProfile())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.Config{
		JWTSecretKey:                "a-completely-different-secret",
		JWTAccessTokenExpiryMinutes: 15 * time.Minute,
	}, zap.NewNop())

	token, _, err := other.GenerateAccessToken(testProfile())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecretKey:                "test-secret-key-for-unit-tests",
		JWTAccessTokenExpiryMinutes: -1 * time.Minute, // already expired
	}
	svc := NewJWTService(cfg, zap.NewNop())

	token, _, err := svc.GenerateAccessToken(testProfile())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
