package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	catalogdto "github.com/prisweb123/neuto-backend/internal/api/catalog/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/catalog/models"
	basesvc "github.com/prisweb123/neuto-backend/internal/api/base/service"
	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionPackageService là cấu trúc chứa các phương thức liên quan đến gói tùy chọn
type OptionPackageService struct {
	*basesvc.BaseServiceMongoImpl[models.OptionPackage]
}

// NewOptionPackageService tạo mới OptionPackageService
func NewOptionPackageService() (*OptionPackageService, error) {
	optionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OptionPackages)
	if !exist {
		return nil, fmt.Errorf("failed to get option_packages collection: %v", common.ErrNotFound)
	}

	return &OptionPackageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OptionPackage](optionCollection),
	}, nil
}

// Create tạo gói tùy chọn mới, tên không được trùng với gói đã có.
func (s *OptionPackageService) Create(ctx context.Context, input *catalogdto.OptionPackageCreateInput) (*models.OptionPackage, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeValidationInput, "Option package with this name already exists for this model", common.StatusBadRequest, nil)
	}

	optionPackage := models.OptionPackage{
		Name:        input.Name,
		MarkeModels: input.MarkeModels,
		Info:        input.Info,
		Options:     input.Options,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, optionPackage)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"option_package_id": created.ID.Hex(), "name": created.Name}).Info("Create: Tạo gói tùy chọn thành công")
	return &created, nil
}

// Update cập nhật gói tùy chọn. Nếu đổi tên thì tên mới không được trùng
// với gói tùy chọn khác.
func (s *OptionPackageService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.OptionPackageUpdateInput) (*models.OptionPackage, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Option package not found", common.StatusNotFound, nil)
		}
		return nil, err
	}

	set := map[string]interface{}{}
	if input.Name != "" && input.Name != current.Name {
		exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name, "_id": bson.M{"$ne": id}})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeValidationInput, "Option package name already exists for this model", common.StatusBadRequest, nil)
		}
		set["name"] = input.Name
	}
	if len(input.MarkeModels) > 0 {
		set["markeModels"] = input.MarkeModels
	}
	if input.Info != "" {
		set["info"] = input.Info
	}
	if len(input.Options) > 0 {
		set["options"] = input.Options
	}
	if len(set) == 0 {
		return &current, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
