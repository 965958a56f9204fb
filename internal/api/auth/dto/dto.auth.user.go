// Package authdto chứa các DTO đầu vào của domain auth.
package authdto

// UserCreateInput dữ liệu đăng ký người dùng mới (chỉ admin được gọi)
type UserCreateInput struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Mobile   string `json:"mobile" bson:"mobile" validate:"required"`
	Password string `json:"password" bson:"-" validate:"required,min=6"`
	Role     string `json:"role" bson:"role" validate:"omitempty,oneof=admin standard"`
}

// UserLoginInput dữ liệu đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateInput dữ liệu cập nhật người dùng (chỉ admin được gọi)
type UserUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin standard"`
}
