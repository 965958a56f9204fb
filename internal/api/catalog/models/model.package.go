package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarkeModel là một cặp (hãng xe, dòng xe) cho biết gói áp dụng cho xe nào.
// Thứ tự các cặp trong mảng được giữ nguyên khi đọc lại.
type MarkeModel struct {
	Marke string `json:"marke" bson:"marke"`
	Model string `json:"model" bson:"model"`
}

// Package là gói sản phẩm cho một hoặc nhiều dòng xe.
// Image lưu dạng data URI base64, được dựng từ file upload lúc tạo/cập nhật.
type Package struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	MarkeModels []MarkeModel       `json:"markeModels" bson:"markeModels"`
	Discount    float64            `json:"discount" bson:"discount"`
	Price       float64            `json:"price" bson:"price"`
	EndDate     int64              `json:"endDate" bson:"endDate"` // Unix milli
	Image       string             `json:"image" bson:"image"`
	Include     []string           `json:"include" bson:"include"`
	Info        string             `json:"info" bson:"info"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
