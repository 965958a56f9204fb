package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua bson
// marshal/unmarshal. Các tag bson trên struct quyết định tên key, nên map
// kết quả dùng được trực tiếp trong các truy vấn/update của mongo driver.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// ToStruct chuyển đổi một map/document thành struct đích thông qua bson.
// Dùng khi cần chuyển DTO đã parse thành model có tag bson tương ứng.
func ToStruct(src interface{}, dst interface{}) error {
	raw, err := bson.Marshal(src)
	if err != nil {
		return fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return nil
}
