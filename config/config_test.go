package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WithRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")

	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "test-secret", cfg.JwtSecret)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB_ConnectionURI)

	// Các giá trị mặc định
	assert.Equal(t, ":5000", cfg.Address)
	assert.Equal(t, "neuto", cfg.MongoDB_DBName)
	assert.Equal(t, "*", cfg.CORS_Origins)
	assert.False(t, cfg.RateLimit_Enabled)
	assert.False(t, cfg.EnableTLS)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("ADDRESS", ":8080")
	t.Setenv("MONGODB_DBNAME", "neuto_test")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_MAX", "10")

	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "neuto_test", cfg.MongoDB_DBName)
	assert.True(t, cfg.RateLimit_Enabled)
	assert.Equal(t, 10, cfg.RateLimit_Max)
}

// Thiếu JWT_SECRET thì config phải nil để server fatal ngay lúc khởi động
func TestNewConfig_MissingJwtSecret(t *testing.T) {
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	cfg := NewConfig()
	assert.Nil(t, cfg)
}

func TestNewConfig_MissingConnectionURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGODB_CONNECTION_URI", "placeholder")
	os.Unsetenv("MONGODB_CONNECTION_URI")

	cfg := NewConfig()
	assert.Nil(t, cfg)
}
