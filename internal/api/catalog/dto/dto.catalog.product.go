// Package catalogdto chứa các cấu trúc input của domain catalog.
package catalogdto

// ProductCreateInput là dữ liệu đầu vào để tạo sản phẩm mới.
// Active không bắt buộc, mặc định true khi không gửi.
type ProductCreateInput struct {
	Name   string `json:"name" bson:"name" validate:"required,no_xss"`
	Model  string `json:"model" bson:"model" validate:"required,no_xss"`
	Active *bool  `json:"active" bson:"-" validate:"omitempty"`
}

// ProductUpdateInput là dữ liệu đầu vào để cập nhật sản phẩm, mọi trường đều tùy chọn.
type ProductUpdateInput struct {
	Name  string `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Model string `json:"model" bson:"model,omitempty" validate:"omitempty,no_xss"`
}
