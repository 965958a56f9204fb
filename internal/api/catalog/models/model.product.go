// Package models chứa model của domain catalog (sản phẩm, gói xe, gói tùy chọn).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product là sản phẩm/dịch vụ trong catalog.
// Name là unique trên toàn collection; active được bật/tắt độc lập với sửa đổi.
type Product struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Model     string             `json:"model" bson:"model"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
