// Package offersvc - service báo giá (PriceOffer).
package offersvc

import (
	"context"
	"errors"
	"fmt"

	authmodels "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	basesvc "github.com/prisweb123/neuto-backend/internal/api/base/service"
	offerdto "github.com/prisweb123/neuto-backend/internal/api/offer/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/offer/models"
	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/global"
	"github.com/prisweb123/neuto-backend/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PriceOfferService là cấu trúc chứa các phương thức liên quan đến báo giá.
// Giữ thêm service của collection users để resolve thông tin người tạo.
// Phụ thuộc qua interface BaseServiceMongo để test được với store giả.
type PriceOfferService struct {
	basesvc.BaseServiceMongo[models.PriceOffer]
	userService basesvc.BaseServiceMongo[authmodels.User]
}

// NewPriceOfferService tạo mới PriceOfferService
func NewPriceOfferService() (*PriceOfferService, error) {
	offerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PriceOffers)
	if !exist {
		return nil, fmt.Errorf("failed to get price_offers collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &PriceOfferService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.PriceOffer](offerCollection),
		userService:      basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// nextOfferNo lấy số báo giá kế tiếp: offerNo lớn nhất hiện có + 1, bắt đầu
// từ 1. Hai request tạo đồng thời có thể đọc cùng một số; unique index trên
// offerNo chặn bản ghi thứ hai và client nhận 400 để thử lại.
func (s *PriceOfferService) nextOfferNo(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "offerNo", Value: -1}})
	latest, err := s.FindOne(ctx, bson.D{}, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return latest.OfferNo + 1, nil
}

func toMixedList(items []map[string]interface{}) []bson.M {
	if len(items) == 0 {
		return nil
	}
	mixed := make([]bson.M, 0, len(items))
	for _, item := range items {
		mixed = append(mixed, bson.M(item))
	}
	return mixed
}

// Create tạo báo giá mới, server gán offerNo và createdBy
func (s *PriceOfferService) Create(ctx context.Context, creator *authmodels.User, input *offerdto.PriceOfferCreateInput) (map[string]interface{}, error) {
	offerNo, err := s.nextOfferNo(ctx)
	if err != nil {
		return nil, err
	}

	discount := input.Discount
	if discount == "" {
		discount = "0"
	}
	validDays := input.ValidDays
	if validDays == "" {
		validDays = "1"
	}

	offer := models.PriceOffer{
		OfferNo:             offerNo,
		SelectedPackage:     bson.M(input.SelectedPackage),
		Marke:               input.Marke,
		Model:               input.Model,
		Info:                input.Info,
		AddedOptionPackages: toMixedList(input.AddedOptionPackages),
		ManualProducts:      toMixedList(input.ManualProducts),
		Discount:            discount,
		Terms:               input.Terms,
		ValidDays:           validDays,
		CreatedBy:           creator.ID,
	}

	created, err := s.BaseServiceMongo.InsertOne(ctx, offer)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "Offer number already in use, please try again", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"offer_id": created.ID.Hex(), "offer_no": created.OfferNo, "created_by": creator.ID.Hex()}).Info("Create: Tạo báo giá thành công")

	view, err := utility.ToMap(created)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	view["createdBy"] = map[string]interface{}{"username": creator.Name}
	return view, nil
}

// resolveCreators thay createdBy (ObjectID) bằng thông tin người tạo
// {id, username, email}. Người tạo đã bị xóa thì createdBy để null.
func (s *PriceOfferService) resolveCreators(ctx context.Context, offers []models.PriceOffer) ([]map[string]interface{}, error) {
	idSet := map[primitive.ObjectID]struct{}{}
	for _, offer := range offers {
		idSet[offer.CreatedBy] = struct{}{}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	creators, err := s.userService.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	creatorByID := map[primitive.ObjectID]authmodels.User{}
	for _, creator := range creators {
		creatorByID[creator.ID] = creator
	}

	views := make([]map[string]interface{}, 0, len(offers))
	for _, offer := range offers {
		view, err := utility.ToMap(offer)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		if creator, ok := creatorByID[offer.CreatedBy]; ok {
			view["createdBy"] = map[string]interface{}{
				"id":       creator.ID.Hex(),
				"username": creator.Name,
				"email":    creator.Email,
			}
		} else {
			view["createdBy"] = nil
		}
		views = append(views, view)
	}
	return views, nil
}

// List lấy toàn bộ báo giá, mới tạo trước, kèm thông tin người tạo
func (s *PriceOfferService) List(ctx context.Context) ([]map[string]interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	offers, err := s.Find(ctx, nil, opts)
	if err != nil {
		return nil, err
	}
	return s.resolveCreators(ctx, offers)
}

// GetById lấy một báo giá theo id, kèm thông tin người tạo
func (s *PriceOfferService) GetById(ctx context.Context, id primitive.ObjectID) (map[string]interface{}, error) {
	offer, err := s.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Price offer not found", common.StatusNotFound, nil)
		}
		return nil, err
	}
	views, err := s.resolveCreators(ctx, []models.PriceOffer{offer})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Delete xóa báo giá theo id
func (s *PriceOfferService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.DeleteById(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return common.NewError(common.ErrCodeDatabaseQuery, "Price offer not found", common.StatusNotFound, nil)
	}
	return err
}
