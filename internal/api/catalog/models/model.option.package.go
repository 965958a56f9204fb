package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionEntry là một bản ghi tùy chọn dạng key/value mở, không có schema cố định.
// Round-trip JSON/BSON của map giữ nguyên giá trị nên dữ liệu client gửi lên
// được lưu và trả lại đúng như cũ.
type OptionEntry map[string]interface{}

// OptionPackage là gói tùy chọn cho một hoặc nhiều dòng xe, không có ảnh.
type OptionPackage struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	MarkeModels []MarkeModel       `json:"markeModels" bson:"markeModels"`
	Info        string             `json:"info" bson:"info"`
	Options     []OptionEntry      `json:"options" bson:"options"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
