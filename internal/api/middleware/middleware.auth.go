// Package middleware chứa access guard: xác thực token và kiểm tra vai trò
// trước khi request chạm tới handler.
package middleware

import (
	"fmt"
	"strings"
	"sync"

	models "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	authsvc "github.com/prisweb123/neuto-backend/internal/api/auth/service"
	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/global"
	"github.com/prisweb123/neuto-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthManager giữ user service dùng chung cho guard (khởi tạo một lần)
type AuthManager struct {
	userService *authsvc.UserService
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// getAuthManager trả về AuthManager singleton
func getAuthManager() (*AuthManager, error) {
	var initErr error
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			initErr = err
			return
		}
		authManager = &AuthManager{userService: userService}
	})
	if authManager == nil {
		return nil, fmt.Errorf("auth manager not initialized: %v", initErr)
	}
	return authManager, nil
}

// AuthMiddleware trả về guard cho một permission dạng "Resource.Operation".
// Permission rỗng nghĩa là chỉ yêu cầu xác thực, không kiểm tra vai trò.
//
// Pipeline (fail closed, dừng request ngay khi một bước thất bại):
//  1. Lấy bearer token từ Authorization header; thiếu token -> 401 trước khi chạm store.
//  2. Verify chữ ký + thời hạn; mọi lỗi (hết hạn / sai chữ ký / malformed) đều là 401,
//     phân loại chi tiết chỉ ghi vào log.
//  3. Đọc lại User theo id trong claims để bắt kịp thay đổi vai trò hoặc vô hiệu hóa
//     xảy ra sau khi phát hành token; user biến mất hoặc inactive -> 401.
//  4. Nếu có permission: vai trò hiện tại phải nằm trong bảng phân quyền, sai -> 403.
//
// Thành công: user (không có password hash) được gắn vào Locals cho handler phía sau.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			logrus.WithFields(logrus.Fields{"path": c.Path()}).Warn("[AUTH] Thiếu bearer token")
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, tokenString)
		if err != nil {
			logrus.WithFields(logrus.Fields{"path": c.Path(), "reason": err.Error()}).Warn("[AUTH] Token không hợp lệ")
			return basehdl.ErrorResponse(c, err)
		}

		manager, err := getAuthManager()
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		// Đọc lại user từ store: token hợp lệ nhưng user đã bị xóa / vô hiệu hóa
		// hoặc bị đổi vai trò thì quyết định theo trạng thái hiện tại.
		user, err := manager.userService.FindOneById(c.Context(), userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": claims.UserID}).Warn("[AUTH] User trong token không còn tồn tại")
			return basehdl.ErrorResponse(c, common.ErrUserNotFound)
		}
		if !user.Active {
			logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex()}).Warn("[AUTH] User đã bị vô hiệu hóa")
			return basehdl.ErrorResponse(c, common.ErrUserInactive)
		}

		user.Password = ""
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		if requirePermission != "" && !RoleAllowed(requirePermission, user.Role) {
			logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "role": user.Role, "permission": requirePermission}).Warn("[AUTH] Không đủ quyền")
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				fmt.Sprintf("User role %s is not authorized to access this route", user.Role),
				common.StatusForbidden,
				nil,
			))
		}

		return c.Next()
	}
}

// ActingUser lấy user đã xác thực từ Locals (guard phải chạy trước)
func ActingUser(c fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}
