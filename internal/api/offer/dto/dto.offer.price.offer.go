// Package offerdto chứa các cấu trúc input của domain offer.
package offerdto

// PriceOfferCreateInput là dữ liệu đầu vào để tạo báo giá.
// Các trường mixed (selectedPackage, addedOptionPackages, manualProducts) được
// lưu nguyên dạng; offerNo và createdBy do server gán, client không gửi.
type PriceOfferCreateInput struct {
	SelectedPackage     map[string]interface{}   `json:"selectedPackage" bson:"selectedPackage,omitempty" validate:"omitempty"`
	Marke               string                   `json:"marke" bson:"marke" validate:"required,no_xss"`
	Model               string                   `json:"model" bson:"model" validate:"required,no_xss"`
	Info                string                   `json:"info" bson:"info,omitempty" validate:"omitempty"`
	AddedOptionPackages []map[string]interface{} `json:"addedOptionPackages" bson:"addedOptionPackages,omitempty" validate:"omitempty"`
	ManualProducts      []map[string]interface{} `json:"manualProducts" bson:"manualProducts,omitempty" validate:"omitempty"`
	Discount            string                   `json:"discount" bson:"discount,omitempty" validate:"omitempty"`
	Terms               string                   `json:"terms" bson:"terms,omitempty" validate:"omitempty"`
	ValidDays           string                   `json:"validDays" bson:"validDays,omitempty" validate:"omitempty"`
}
