package catalogdto

import (
	"github.com/prisweb123/neuto-backend/internal/api/catalog/models"
)

// PackageCreateInput là dữ liệu tạo gói, được handler dựng từ multipart form.
// Image (data URI) được handler gắn vào sau khi đọc file upload nên không
// validate ở đây.
type PackageCreateInput struct {
	Name        string              `json:"name" bson:"name" validate:"required,no_xss"`
	Description string              `json:"description" bson:"description" validate:"required"`
	MarkeModels []models.MarkeModel `json:"markeModels" bson:"markeModels" validate:"required,min=1,dive"`
	Discount    float64             `json:"discount" bson:"discount" validate:"omitempty,min=0"`
	Price       float64             `json:"price" bson:"price" validate:"required,min=0"`
	EndDate     int64               `json:"endDate" bson:"endDate" validate:"omitempty"`
	Image       string              `json:"-" bson:"image"`
	Include     []string            `json:"include" bson:"include" validate:"required,min=1"`
	Info        string              `json:"info" bson:"info" validate:"required"`
}

// PackageUpdateInput là dữ liệu cập nhật gói, mọi trường đều tùy chọn.
// Ảnh mới (nếu có) cũng do handler gắn vào.
type PackageUpdateInput struct {
	Name        string              `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Description string              `json:"description" bson:"description,omitempty" validate:"omitempty"`
	MarkeModels []models.MarkeModel `json:"markeModels" bson:"markeModels,omitempty" validate:"omitempty,min=1,dive"`
	Discount    *float64            `json:"discount" bson:"-" validate:"omitempty,min=0"`
	Price       *float64            `json:"price" bson:"-" validate:"omitempty,min=0"`
	EndDate     *int64              `json:"endDate" bson:"-" validate:"omitempty"`
	Image       string              `json:"-" bson:"image,omitempty"`
	Include     []string            `json:"include" bson:"include,omitempty" validate:"omitempty,min=1"`
	Info        string              `json:"info" bson:"info,omitempty" validate:"omitempty"`
}
