package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("test-access-secret"), service.accessSecret)
	assert.Equal(t, []byte("test-refresh-secret"), service.refreshSecret)
}

func TestGenerateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice", "a@x.com", "Alice A")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice", "a@x.com", "Alice A")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice A", claims.FullName)
}

func TestValidateRefreshToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateAccessToken_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateRefreshToken_WrongSecret(t *testing.T) {
	service1 := NewService("access-1", "refresh-1", time.Minute, time.Hour)
	service2 := NewService("access-1", "refresh-2", time.Minute, time.Hour)

	token, err := service1.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = service2.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RefreshTokenRejected(t *testing.T) {
	// A refresh token must never pass access-token validation; the
	// secrets are independent.
	service := newTestService()

	refresh, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateRefreshToken_AccessTokenRejected(t *testing.T) {
	service := newTestService()

	access, err := service.GenerateAccessToken("user-123", "alice", "a@x.com", "Alice A")
	assert.NoError(t, err)

	_, err = service.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateAccessToken_ExpiredToken(t *testing.T) {
	service := NewService("test-access-secret", "test-refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateAccessToken("user-123", "alice", "a@x.com", "Alice A")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_ExpirySet(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice", "a@x.com", "Alice A")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateAccessToken_EmptyToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("")
	assert.Error(t, err)
}
