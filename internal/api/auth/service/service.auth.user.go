// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "github.com/prisweb123/neuto-backend/internal/api/auth/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	basesvc "github.com/prisweb123/neuto-backend/internal/api/base/service"
	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/global"
	"github.com/prisweb123/neuto-backend/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register tạo người dùng mới với mật khẩu đã băm.
// Email/mobile trùng sẽ bị unique index chặn và trả về lỗi Conflict.
func (s *UserService) Register(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	hashed, err := models.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleStandard
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Password: hashed,
		Role:     role,
		Active:   true,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "E-post eller mobilnummer er allerede registrert", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Tạo người dùng thành công")
	return &created, nil
}

// Login xác thực thông tin đăng nhập và phát hành token.
// Tài khoản bị vô hiệu hóa không được đăng nhập dù mật khẩu đúng.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (string, *models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex()}).Warn("Login: Tài khoản bị vô hiệu hóa")
		return "", nil, common.ErrUserInactive
	}

	if !user.ComparePassword(input.Password) {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("Login: Đăng nhập thành công")
	return token, &user, nil
}

// UpdateUser cập nhật thông tin người dùng; chỉ các field có giá trị mới được set.
// Mật khẩu mới (nếu có) được băm lại trước khi lưu.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, input *authdto.UserUpdateInput) (*models.User, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Mobile != "" {
		set["mobile"] = input.Mobile
	}
	if input.Role != "" {
		set["role"] = input.Role
	}
	if input.Password != "" {
		hashed, err := models.HashPassword(input.Password)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
		}
		set["password"] = hashed
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "E-post eller mobilnummer er allerede registrert", common.StatusBadRequest, nil)
		}
		return nil, err
	}
	return &updated, nil
}

// ToggleActive đảo trạng thái active của người dùng
func (s *UserService) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"active": !user.Active},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": id.Hex(), "active": updated.Active}).Info("ToggleActive: Đã đổi trạng thái người dùng")
	return &updated, nil
}
