package middleware

import (
	models "github.com/prisweb123/neuto-backend/internal/api/auth/models"
)

// anyAuthenticated là tập role cho các thao tác mọi người dùng đã đăng nhập đều được phép
var anyAuthenticated = []string{models.RoleAdmin, models.RoleStandard}

// permissionRoles ánh xạ tĩnh "Resource.Operation" -> các role được phép.
// Các thao tác đọc công khai (catalog) không có entry vì route không gắn guard.
var permissionRoles = map[string][]string{
	// User
	"User.Create":       {models.RoleAdmin},
	"User.Read":         {models.RoleAdmin},
	"User.Update":       {models.RoleAdmin},
	"User.Delete":       {models.RoleAdmin},
	"User.ToggleActive": {models.RoleAdmin},

	// Product
	"Product.Create":       {models.RoleAdmin},
	"Product.Update":       {models.RoleAdmin},
	"Product.Delete":       {models.RoleAdmin},
	"Product.ToggleActive": {models.RoleAdmin},

	// Package
	"Package.Create": {models.RoleAdmin},
	"Package.Update": {models.RoleAdmin},
	"Package.Delete": {models.RoleAdmin},

	// OptionPackage
	"OptionPackage.Create": {models.RoleAdmin},
	"OptionPackage.Update": {models.RoleAdmin},
	"OptionPackage.Delete": {models.RoleAdmin},

	// PriceOffer
	"PriceOffer.Create": anyAuthenticated,
	"PriceOffer.Read":   anyAuthenticated,
	"PriceOffer.Delete": anyAuthenticated,
}

// RequiredRoles trả về tập role được phép cho một permission.
// Permission không có trong bảng thì coi như không ai được phép (fail closed).
func RequiredRoles(permission string) ([]string, bool) {
	roles, ok := permissionRoles[permission]
	return roles, ok
}

// RoleAllowed kiểm tra role có nằm trong tập role được phép của permission không
func RoleAllowed(permission string, role string) bool {
	roles, ok := RequiredRoles(permission)
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
