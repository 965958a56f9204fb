package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_CompareRoundTrip(t *testing.T) {
	hashed, err := HashPassword("hemmelig123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "hemmelig123", hashed)

	user := User{Password: hashed}
	assert.True(t, user.ComparePassword("hemmelig123"))
	assert.False(t, user.ComparePassword("feilpassord"))
	assert.False(t, user.ComparePassword(""))
}

// Hai lần băm cùng một mật khẩu phải cho hash khác nhau (salt ngẫu nhiên)
func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("hemmelig123")
	require.NoError(t, err)
	second, err := HashPassword("hemmelig123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
