package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	access, refresh, err := GenerateTokens(testSecret, "6650f0a1b2c3d4e5f6a7b8c9", "jazz@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	for _, token := range []string{access, refresh} {
		claims, err := ValidateToken(testSecret, token)
		assert.NoError(t, err)
		assert.Equal(t, "6650f0a1b2c3d4e5f6a7b8c9", claims.UserID)
		assert.Equal(t, "jazz@example.com", claims.Email)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	access, _, err := GenerateTokens(testSecret, "6650f0a1b2c3d4e5f6a7b8c9", "jazz@example.com")
	assert.NoError(t, err)

	claims, err := ValidateToken("another-secret", access)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenMalformed(t *testing.T) {
	claims, err := ValidateToken(testSecret, "not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "6650f0a1b2c3d4e5f6a7b8c9",
		Email:  "jazz@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	claims, err := ValidateToken(testSecret, tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
