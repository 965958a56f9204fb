package middleware

import (
	"testing"

	models "github.com/prisweb123/neuto-backend/internal/api/auth/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed_AdminOnlyOperations(t *testing.T) {
	adminOnly := []string{
		"User.Create", "User.Read", "User.Update", "User.Delete", "User.ToggleActive",
		"Product.Create", "Product.Update", "Product.Delete", "Product.ToggleActive",
		"Package.Create", "Package.Update", "Package.Delete",
		"OptionPackage.Create", "OptionPackage.Update", "OptionPackage.Delete",
	}
	for _, permission := range adminOnly {
		assert.True(t, RoleAllowed(permission, models.RoleAdmin), permission)
		assert.False(t, RoleAllowed(permission, models.RoleStandard), permission)
	}
}

func TestRoleAllowed_AnyAuthenticatedOperations(t *testing.T) {
	for _, permission := range []string{"PriceOffer.Create", "PriceOffer.Read", "PriceOffer.Delete"} {
		assert.True(t, RoleAllowed(permission, models.RoleAdmin), permission)
		assert.True(t, RoleAllowed(permission, models.RoleStandard), permission)
	}
}

// Permission không có trong bảng thì không role nào được phép
func TestRoleAllowed_UnknownPermissionFailsClosed(t *testing.T) {
	assert.False(t, RoleAllowed("Unknown.Operation", models.RoleAdmin))
	assert.False(t, RoleAllowed("", models.RoleAdmin))

	_, ok := RequiredRoles("Unknown.Operation")
	assert.False(t, ok)
}

func TestRoleAllowed_UnknownRole(t *testing.T) {
	assert.False(t, RoleAllowed("PriceOffer.Create", "superuser"))
	assert.False(t, RoleAllowed("User.Create", ""))
}
