package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/prisweb123/neuto-backend/internal/common"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestCreateToken_RoundTrip(t *testing.T) {
	signed, err := CreateToken(testSecret, "64f1a2b3c4d5e6f7a8b9c0d1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ParseToken(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	// Thời hạn token là một ngày kể từ lúc phát hành
	lifetime := time.Unix(claims.ExpiresAt, 0).Sub(time.Unix(claims.IssuedAt, 0))
	assert.Equal(t, TokenExpireDuration, lifetime)
}

func TestCreateToken_EmptySecret(t *testing.T) {
	_, err := CreateToken("", "64f1a2b3c4d5e6f7a8b9c0d1", "admin")
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	// Ký tay một token đã hết hạn
	now := time.Now()
	claims := JwtClaims{
		UserID: "64f1a2b3c4d5e6f7a8b9c0d1",
		Role:   "standard",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Add(-48 * time.Hour).Unix(),
			ExpiresAt: now.Add(-24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestParseToken_WrongSecret(t *testing.T) {
	signed, err := CreateToken(testSecret, "64f1a2b3c4d5e6f7a8b9c0d1", "standard")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestParseToken_Tampered(t *testing.T) {
	signed, err := CreateToken(testSecret, "64f1a2b3c4d5e6f7a8b9c0d1", "standard")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = ParseToken(testSecret, tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}
