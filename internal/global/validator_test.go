package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noXSSInput struct {
	Name string `validate:"required,no_xss"`
}

type passwordInput struct {
	Password string `validate:"required,strong_password"`
}

func TestInitValidator_NoXSS(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate)

	assert.NoError(t, Validate.Struct(noXSSInput{Name: "Vinterpakke 2026"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "javascript:alert(1)"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "a onerror=alert(1)"}))
}

func TestInitValidator_StrongPassword(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate)

	// Đủ 3 trong 4 nhóm ký tự và tối thiểu 8 ký tự
	assert.NoError(t, Validate.Struct(passwordInput{Password: "Hemmelig123"}))
	assert.NoError(t, Validate.Struct(passwordInput{Password: "hemmelig1!"}))

	assert.Error(t, Validate.Struct(passwordInput{Password: "kort1A"}))     // quá ngắn
	assert.Error(t, Validate.Struct(passwordInput{Password: "hemmelig"}))   // chỉ 1 nhóm
	assert.Error(t, Validate.Struct(passwordInput{Password: "hemmelig123"})) // chỉ 2 nhóm
}
