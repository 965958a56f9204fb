package authhdl

import (
	"fmt"

	authdto "github.com/prisweb123/neuto-backend/internal/api/auth/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	authsvc "github.com/prisweb123/neuto-backend/internal/api/auth/service"
	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister đăng ký người dùng mới (chỉ admin)
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.Register(c.Context(), &input)
		h.HandleResponseWithMessage(c, common.StatusCreated, "Bruker registrert!", user, err)
		return nil
	})
}

// HandleLogin đăng nhập, trả về token + role + name
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		token, user, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponseWithMessage(c, common.StatusOK, "Du er nå logget inn", fiber.Map{
			"token": token,
			"role":  user.Role,
			"name":  user.Name,
		}, nil)
		return nil
	})
}

// HandleGetUsers lấy danh sách người dùng (password không bao giờ được trả về)
func (h *UserHandler) HandleGetUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(map[string]interface{}{"name": 1})
		users, err := h.userService.Find(c.Context(), nil, opts)
		h.HandleListResponse(c, common.MsgSuccess, users, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng hiện tại
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Password = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateUser cập nhật người dùng theo id (chỉ admin)
func (h *UserHandler) HandleUpdateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.UpdateUser(c.Context(), objID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleDeleteUser xóa người dùng theo id (chỉ admin)
func (h *UserHandler) HandleDeleteUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.userService.DeleteById(c.Context(), objID)
		h.HandleResponseWithMessage(c, common.StatusOK, "Bruker slettet!", nil, err)
		return nil
	})
}

// HandleToggleActive đảo trạng thái active của người dùng (chỉ admin)
func (h *UserHandler) HandleToggleActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.ToggleActive(c.Context(), objID)
		h.HandleResponse(c, user, err)
		return nil
	})
}
