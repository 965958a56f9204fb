package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

// Trùng key unique phải trả về 400, không phải 409
func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}

	converted := ConvertMongoError(dupErr)
	require.Error(t, converted)
	assert.True(t, errors.Is(converted, ErrMongoDuplicate))

	var customErr *Error
	require.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusBadRequest, customErr.StatusCode)
}

func TestConvertMongoError_NotFoundPassthrough(t *testing.T) {
	converted := ConvertMongoError(ErrNotFound)
	assert.True(t, errors.Is(converted, ErrNotFound))

	var customErr *Error
	require.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusNotFound, customErr.StatusCode)
}

// Custom error đã chuẩn hóa phải được giữ nguyên, không bị convert lại
func TestConvertMongoError_CustomErrorPassthrough(t *testing.T) {
	custom := NewError(ErrCodeValidationInput, "Product with this name already exists", StatusBadRequest, nil)
	converted := ConvertMongoError(custom)
	assert.Equal(t, custom, converted)
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	converted := ConvertMongoError(errors.New("boom"))
	require.Error(t, converted)

	var customErr *Error
	require.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
}

func TestErrorIs_MatchesCodeAndMessage(t *testing.T) {
	err := NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	assert.True(t, errors.Is(err, ErrTokenMissing))
	assert.False(t, errors.Is(err, ErrTokenExpired))
}

func TestError_Error(t *testing.T) {
	err := NewError(ErrCodeBusiness, "Offer number already in use, please try again", StatusBadRequest, nil)
	assert.Equal(t, "Offer number already in use, please try again", err.Error())
}
