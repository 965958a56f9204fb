package cataloghdl

import (
	"errors"
	"fmt"

	catalogdto "github.com/prisweb123/neuto-backend/internal/api/catalog/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/catalog/models"
	catalogsvc "github.com/prisweb123/neuto-backend/internal/api/catalog/service"
	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OptionPackageHandler xử lý các request quản lý gói tùy chọn
type OptionPackageHandler struct {
	*basehdl.BaseHandler[models.OptionPackage, catalogdto.OptionPackageCreateInput, catalogdto.OptionPackageUpdateInput]
	optionPackageService *catalogsvc.OptionPackageService
}

// NewOptionPackageHandler tạo instance mới của OptionPackageHandler
func NewOptionPackageHandler() (*OptionPackageHandler, error) {
	optionPackageService, err := catalogsvc.NewOptionPackageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create option package service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.OptionPackage, catalogdto.OptionPackageCreateInput, catalogdto.OptionPackageUpdateInput](optionPackageService)
	return &OptionPackageHandler{
		BaseHandler:          baseHandler,
		optionPackageService: optionPackageService,
	}, nil
}

// HandleCreate tạo gói tùy chọn mới (chỉ admin)
func (h *OptionPackageHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.OptionPackageCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		optionPackage, err := h.optionPackageService.Create(c.Context(), &input)
		h.HandleResponseWithMessage(c, common.StatusCreated, "Option package created successfully", optionPackage, err)
		return nil
	})
}

// HandleGetOptionPackages lấy toàn bộ gói tùy chọn, mới tạo trước
func (h *OptionPackageHandler) HandleGetOptionPackages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		optionPackages, err := h.optionPackageService.Find(c.Context(), nil, opts)
		h.HandleListResponse(c, common.MsgSuccess, optionPackages, err)
		return nil
	})
}

// HandleGetOptionPackage lấy một gói tùy chọn theo id
func (h *OptionPackageHandler) HandleGetOptionPackage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		optionPackage, err := h.optionPackageService.FindOneById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Option package not found", common.StatusNotFound, nil)
		}
		h.HandleResponse(c, optionPackage, err)
		return nil
	})
}

// HandleUpdate cập nhật gói tùy chọn (chỉ admin)
func (h *OptionPackageHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input catalogdto.OptionPackageUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		optionPackage, err := h.optionPackageService.Update(c.Context(), objID, &input)
		h.HandleResponseWithMessage(c, common.StatusOK, "Option package updated successfully", optionPackage, err)
		return nil
	})
}

// HandleDelete xóa gói tùy chọn (chỉ admin)
func (h *OptionPackageHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.optionPackageService.DeleteById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Option package not found", common.StatusNotFound, nil)
		}
		h.HandleResponseWithMessage(c, common.StatusOK, "Option package deleted successfully", nil, err)
		return nil
	})
}
