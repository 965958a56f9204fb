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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageService là cấu trúc chứa các phương thức liên quan đến gói sản phẩm
type PackageService struct {
	*basesvc.BaseServiceMongoImpl[models.Package]
}

// NewPackageService tạo mới PackageService
func NewPackageService() (*PackageService, error) {
	packageCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Packages)
	if !exist {
		return nil, fmt.Errorf("failed to get packages collection: %v", common.ErrNotFound)
	}

	return &PackageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Package](packageCollection),
	}, nil
}

// Create tạo gói mới. Image đã được handler dựng thành data URI trước khi gọi.
func (s *PackageService) Create(ctx context.Context, input *catalogdto.PackageCreateInput) (*models.Package, error) {
	pkg := models.Package{
		Name:        input.Name,
		Description: input.Description,
		MarkeModels: input.MarkeModels,
		Discount:    input.Discount,
		Price:       input.Price,
		EndDate:     input.EndDate,
		Image:       input.Image,
		Include:     input.Include,
		Info:        input.Info,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, pkg)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"package_id": created.ID.Hex(), "name": created.Name}).Info("Create: Tạo gói thành công")
	return &created, nil
}

// Update cập nhật gói; chỉ các field có giá trị mới được set.
func (s *PackageService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.PackageUpdateInput) (*models.Package, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(input.MarkeModels) > 0 {
		set["markeModels"] = input.MarkeModels
	}
	if input.Discount != nil {
		set["discount"] = *input.Discount
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.EndDate != nil {
		set["endDate"] = *input.EndDate
	}
	if input.Image != "" {
		set["image"] = input.Image
	}
	if len(input.Include) > 0 {
		set["include"] = input.Include
	}
	if input.Info != "" {
		set["info"] = input.Info
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Package not found", common.StatusNotFound, nil)
		}
		return nil, err
	}
	return &updated, nil
}
