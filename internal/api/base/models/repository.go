// Package basemodels chứa các kiểu dữ liệu dùng chung cho tầng service/handler.
package basemodels

// PaginateResult kết quả phân trang
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại
	Limit     int64 `json:"limit" bson:"limit"`         // Số item mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số item trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Danh sách items
	Total     int64 `json:"total" bson:"total"`         // Tổng số item
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}
