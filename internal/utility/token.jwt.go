package utility

import (
	"errors"
	"time"

	"github.com/prisweb123/neuto-backend/internal/common"

	jwt "github.com/dgrijalva/jwt-go"
)

// TokenExpireDuration là thời hạn sống của token: một ngày kể từ lúc phát hành.
const TokenExpireDuration = 24 * time.Hour

// JwtClaims là claims được mã hóa trong token: định danh user và vai trò.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// CreateToken phát hành một JWT HS256 có thời hạn cho user.
// Secret phải được kiểm tra từ lúc khởi động server (config required),
// hàm này không chấp nhận secret rỗng.
func CreateToken(secret string, userID string, role string) (string, error) {
	if secret == "" {
		return "", common.NewError(common.ErrCodeInternalServer, "JWT secret chưa được cấu hình", common.StatusInternalServerError, nil)
	}

	now := time.Now()
	claims := JwtClaims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenExpireDuration).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể ký token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken xác minh chữ ký và thời hạn của token, trả về claims nếu hợp lệ.
// Mọi lỗi đều là 401 với client; phân loại chi tiết (expired / bad signature /
// malformed) chỉ dùng cho logging ở middleware.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, common.ErrTokenExpired
			}
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
