// Package models chứa model của domain offer (báo giá).
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceOffer là một báo giá cho khách hàng.
// OfferNo là số thứ tự tăng dần, unique trên toàn collection; gói đã chọn và
// các gói/sản phẩm thêm vào lưu nguyên dạng client gửi lên (snapshot tại thời
// điểm tạo, không tham chiếu tới catalog).
type PriceOffer struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OfferNo             int64              `json:"offerNo" bson:"offerNo" index:"unique"`
	SelectedPackage     bson.M             `json:"selectedPackage" bson:"selectedPackage,omitempty"`
	Marke               string             `json:"marke" bson:"marke"`
	Model               string             `json:"model" bson:"model"`
	Info                string             `json:"info" bson:"info,omitempty"`
	AddedOptionPackages []bson.M           `json:"addedOptionPackages" bson:"addedOptionPackages,omitempty"`
	ManualProducts      []bson.M           `json:"manualProducts" bson:"manualProducts,omitempty"`
	Discount            string             `json:"discount" bson:"discount"`
	Terms               string             `json:"terms" bson:"terms,omitempty"`
	ValidDays           string             `json:"validDays" bson:"validDays"`
	CreatedBy           primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
