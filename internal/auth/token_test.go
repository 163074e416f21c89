package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rental-complaint-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:         "4f9d9b6e-9a6b-4f55-8f6a-0b1d9a2c3e4d",
		Name:       "Alice",
		Email:      "alice@x.com",
		Role:       domain.RoleTenant,
		IsApproved: true,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)

	token, exp, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4f9d9b6e-9a6b-4f55-8f6a-0b1d9a2c3e4d", claims.UserID)
	assert.Equal(t, domain.RoleTenant, claims.Role)
	assert.Equal(t, "alice@x.com", claims.Email)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)
	other := NewTokenManager("other-secret", 24)

	token, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)

	claims := &Claims{
		UserID: "some-id",
		Role:   domain.RoleTenant,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "some-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestTokenManager_RejectsUnexpectedSigningMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "x"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
}
