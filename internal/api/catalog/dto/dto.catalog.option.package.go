package catalogdto

import (
	"github.com/prisweb123/neuto-backend/internal/api/catalog/models"
)

// OptionPackageCreateInput là dữ liệu tạo gói tùy chọn.
// Options là mảng bản ghi tự do, lưu nguyên dạng client gửi lên.
type OptionPackageCreateInput struct {
	Name        string               `json:"name" bson:"name" validate:"required,no_xss"`
	MarkeModels []models.MarkeModel  `json:"markeModels" bson:"markeModels" validate:"required,min=1,dive"`
	Info        string               `json:"info" bson:"info" validate:"required"`
	Options     []models.OptionEntry `json:"options" bson:"options" validate:"required,min=1"`
}

// OptionPackageUpdateInput là dữ liệu cập nhật gói tùy chọn, mọi trường đều tùy chọn.
type OptionPackageUpdateInput struct {
	Name        string               `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	MarkeModels []models.MarkeModel  `json:"markeModels" bson:"markeModels,omitempty" validate:"omitempty,min=1,dive"`
	Info        string               `json:"info" bson:"info,omitempty" validate:"omitempty"`
	Options     []models.OptionEntry `json:"options" bson:"options,omitempty" validate:"omitempty,min=1"`
}
