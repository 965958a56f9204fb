// Package catalogsvc - các service của domain catalog.
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

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// Create tạo sản phẩm mới. Tên sản phẩm là unique, kiểm tra trước khi insert
// để trả message rõ ràng; unique index vẫn chặn race giữa hai request.
func (s *ProductService) Create(ctx context.Context, input *catalogdto.ProductCreateInput) (*models.Product, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeValidationInput, "Product with this name already exists", common.StatusBadRequest, nil)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := models.Product{
		Name:   input.Name,
		Model:  input.Model,
		Active: active,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, product)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Product with this name already exists", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"product_id": created.ID.Hex(), "name": created.Name}).Info("Create: Tạo sản phẩm thành công")
	return &created, nil
}

// Update cập nhật sản phẩm. Nếu đổi tên thì kiểm tra tên mới chưa bị dùng
// bởi sản phẩm khác.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (*models.Product, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Product not found", common.StatusNotFound, nil)
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
			return nil, common.NewError(common.ErrCodeValidationInput, "Product name already exists", common.StatusBadRequest, nil)
		}
		set["name"] = input.Name
	}
	if input.Model != "" {
		set["model"] = input.Model
	}
	if len(set) == 0 {
		return &current, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Product name already exists", common.StatusBadRequest, nil)
		}
		return nil, err
	}
	return &updated, nil
}

// ToggleActive đảo trạng thái active của sản phẩm
func (s *ProductService) ToggleActive(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Product not found", common.StatusNotFound, nil)
		}
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"active": !product.Active},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"product_id": id.Hex(), "active": updated.Active}).Info("ToggleActive: Đã đổi trạng thái sản phẩm")
	return &updated, nil
}
