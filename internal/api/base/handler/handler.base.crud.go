// Package basehdl cung cấp handler CRUD dùng chung cho các domain.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"

	basesvc "github.com/prisweb123/neuto-backend/internal/api/base/service"
	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/global"
	"github.com/prisweb123/neuto-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler là handler cơ sở cho các thao tác CRUD.
// Type Parameters:
//   - T: Model của domain
//   - CreateInput: DTO đầu vào khi tạo mới
//   - UpdateInput: DTO đầu vào khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service basesvc.BaseServiceMongo[T] // Service cơ sở của domain
}

// NewBaseHandler tạo mới một BaseHandler
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		Service: service,
	}
}

// ParseRequestBody parse JSON body vào input struct.
// Dùng json.Decoder với UseNumber để giữ nguyên độ chính xác của số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, common.MsgBadRequest, common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ValidateInput xác thực input struct theo các tag validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// GetIDFromParams lấy ObjectID từ path param "id"
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID không hợp lệ: %s", id), common.StatusBadRequest, err)
	}
	return objID, nil
}

// TransformCreateInputToModel chuyển CreateInput DTO thành model thông qua bson tag
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	var model T
	if err := utility.ToStruct(input, &model); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return &model, nil
}

// TransformUpdateInputToUpdateData chuyển UpdateInput DTO thành UpdateData ($set)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToUpdateData(input *UpdateInput) (*basesvc.UpdateData, error) {
	updateData, err := basesvc.ToUpdateData(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return updateData, nil
}

// HandleFindOneById handler GET /:id dùng chung
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleFindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.Service.FindOneById(c.Context(), objID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDeleteById handler DELETE /:id dùng chung
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.Service.DeleteById(c.Context(), objID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
