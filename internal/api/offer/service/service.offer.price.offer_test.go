package offersvc

import (
	"context"
	"errors"
	"testing"

	authmodels "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	basemodels "github.com/prisweb123/neuto-backend/internal/api/base/models"
	offerdto "github.com/prisweb123/neuto-backend/internal/api/offer/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/offer/models"
	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeStore giả lập BaseServiceMongo trong bộ nhớ cho test, không cần MongoDB
type fakeStore[T any] struct {
	findOneResult T
	findOneErr    error
	findResult    []T
	findManyByIds []T
	insertErr     error
	inserted      []T
}

func (f *fakeStore[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	if f.insertErr != nil {
		return zero, f.insertErr
	}
	f.inserted = append(f.inserted, data)
	return data, nil
}

func (f *fakeStore[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	return f.findOneResult, f.findOneErr
}

func (f *fakeStore[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	return f.findResult, nil
}

func (f *fakeStore[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}

func (f *fakeStore[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	return nil
}

func (f *fakeStore[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.findResult)), nil
}

func (f *fakeStore[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return f.findOneResult, f.findOneErr
}

func (f *fakeStore[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	return f.findManyByIds, nil
}

func (f *fakeStore[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	return &basemodels.PaginateResult[T]{Items: f.findResult}, nil
}

func (f *fakeStore[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}

func (f *fakeStore[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeStore[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, nil
}

func newTestService(offers *fakeStore[models.PriceOffer], users *fakeStore[authmodels.User]) *PriceOfferService {
	return &PriceOfferService{
		BaseServiceMongo: offers,
		userService:      users,
	}
}

// Collection rỗng thì số báo giá đầu tiên là 1
func TestNextOfferNo_EmptyCollection(t *testing.T) {
	offers := &fakeStore[models.PriceOffer]{findOneErr: common.ErrNotFound}
	s := newTestService(offers, &fakeStore[authmodels.User]{})

	offerNo, err := s.nextOfferNo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), offerNo)
}

func TestNextOfferNo_MaxPlusOne(t *testing.T) {
	offers := &fakeStore[models.PriceOffer]{findOneResult: models.PriceOffer{OfferNo: 41}}
	s := newTestService(offers, &fakeStore[authmodels.User]{})

	offerNo, err := s.nextOfferNo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), offerNo)
}

// Xóa báo giá số 1 không làm số 1 được cấp lại: số kế tiếp luôn là max+1
func TestNextOfferNo_NotReusedAfterDelete(t *testing.T) {
	offers := &fakeStore[models.PriceOffer]{findOneResult: models.PriceOffer{OfferNo: 5}}
	s := newTestService(offers, &fakeStore[authmodels.User]{})

	offerNo, err := s.nextOfferNo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), offerNo)
}

func TestCreate_AssignsSequentialNumberAndCreator(t *testing.T) {
	offers := &fakeStore[models.PriceOffer]{findOneResult: models.PriceOffer{OfferNo: 7}}
	s := newTestService(offers, &fakeStore[authmodels.User]{})

	creator := &authmodels.User{ID: primitive.NewObjectID(), Name: "Kari", Email: "kari@neuto.no"}
	input := &offerdto.PriceOfferCreateInput{Marke: "Volvo", Model: "XC60"}

	view, err := s.Create(context.Background(), creator, input)
	require.NoError(t, err)

	require.Len(t, offers.inserted, 1)
	saved := offers.inserted[0]
	assert.Equal(t, int64(8), saved.OfferNo)
	assert.Equal(t, creator.ID, saved.CreatedBy)

	// Mặc định khi client không gửi
	assert.Equal(t, "0", saved.Discount)
	assert.Equal(t, "1", saved.ValidDays)

	// Response thay createdBy bằng thông tin người tạo
	assert.Equal(t, int64(8), view["offerNo"])
	assert.Equal(t, map[string]interface{}{"username": "Kari"}, view["createdBy"])
}

// Trùng offerNo (hai request tạo đồng thời) phải trả 400 để client thử lại
func TestCreate_DuplicateOfferNoReturnsBadRequest(t *testing.T) {
	offers := &fakeStore[models.PriceOffer]{
		findOneResult: models.PriceOffer{OfferNo: 7},
		insertErr:     common.ErrMongoDuplicate,
	}
	s := newTestService(offers, &fakeStore[authmodels.User]{})

	creator := &authmodels.User{ID: primitive.NewObjectID(), Name: "Kari"}
	input := &offerdto.PriceOfferCreateInput{Marke: "Volvo", Model: "XC60"}

	_, err := s.Create(context.Background(), creator, input)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Offer number already in use, please try again", customErr.Message)
}

func TestToMixedList_Empty(t *testing.T) {
	assert.Nil(t, toMixedList(nil))
	assert.Nil(t, toMixedList([]map[string]interface{}{}))
}

func TestToMixedList_PreservesEntries(t *testing.T) {
	items := []map[string]interface{}{
		{"name": "Hengerfeste", "price": 8500},
		{"name": "Vinterdekk", "price": 12000, "count": 4},
	}

	mixed := toMixedList(items)
	require.Len(t, mixed, 2)
	assert.Equal(t, "Hengerfeste", mixed[0]["name"])
	assert.Equal(t, 4, mixed[1]["count"])
}
