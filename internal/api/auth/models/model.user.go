// Package models chứa model của domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Các vai trò người dùng
const (
	RoleAdmin    = "admin"    // Quản trị viên: toàn quyền
	RoleStandard = "standard" // Người dùng thường: chỉ thao tác báo giá
)

// User chứa thông tin người dùng.
// Email và mobile là unique trên toàn hệ thống (unique index là lưới an toàn).
// Password chỉ lưu dạng bcrypt hash và không bao giờ trả về qua API (json:"-").
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique,sparse"`
	Mobile    string             `json:"mobile" bson:"mobile" index:"unique,sparse"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu raw với hash đã lưu
func (u *User) ComparePassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}
