package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testSecret        = "test-secret"
	testRefreshSecret = "test-refresh-secret"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(42, "jane@example.com", "Jane Doe", "admin", testSecret, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "docuport", claims.Issuer)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@b.c", "A", "user", testSecret, 15)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@b.c", "A", "user", testSecret, -1)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-123", testRefreshSecret, 7)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testRefreshSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-id-123", claims.TokenID)
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	// Tokens are signed with different secrets, so one cannot stand in for the other
	token, err := GenerateRefreshToken(7, "token-id-123", testRefreshSecret, 7)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGetExpiryTime(t *testing.T) {
	expiry := GetExpiryTime(7)
	expected := time.Now().Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, expiry, time.Minute)
}
