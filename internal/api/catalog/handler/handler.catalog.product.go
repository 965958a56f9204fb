// Package cataloghdl xử lý các request HTTP của domain catalog.
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

// ProductHandler xử lý các request quản lý sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// HandleCreate tạo sản phẩm mới (chỉ admin)
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.Create(c.Context(), &input)
		h.HandleResponseWithMessage(c, common.StatusCreated, "Product created successfully", product, err)
		return nil
	})
}

// HandleGetProducts lấy toàn bộ sản phẩm, sắp xếp theo tên rồi theo model
func (h *ProductHandler) HandleGetProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "model", Value: 1}})
		products, err := h.productService.Find(c.Context(), nil, opts)
		h.HandleListResponse(c, common.MsgSuccess, products, err)
		return nil
	})
}

// HandleGetActiveProducts lấy các sản phẩm đang active
func (h *ProductHandler) HandleGetActiveProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "model", Value: 1}})
		products, err := h.productService.Find(c.Context(), bson.M{"active": true}, opts)
		h.HandleListResponse(c, common.MsgSuccess, products, err)
		return nil
	})
}

// HandleGetProduct lấy một sản phẩm theo id
func (h *ProductHandler) HandleGetProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.FindOneById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Product not found", common.StatusNotFound, nil)
		}
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleUpdate cập nhật sản phẩm (chỉ admin)
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.Update(c.Context(), objID, &input)
		h.HandleResponseWithMessage(c, common.StatusOK, "Product updated successfully", product, err)
		return nil
	})
}

// HandleDelete xóa sản phẩm (chỉ admin)
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.productService.DeleteById(c.Context(), objID)
		if errors.Is(err, common.ErrNotFound) {
			err = common.NewError(common.ErrCodeDatabaseQuery, "Product not found", common.StatusNotFound, nil)
		}
		h.HandleResponseWithMessage(c, common.StatusOK, "Product deleted successfully", nil, err)
		return nil
	})
}

// HandleToggleActive đảo trạng thái active, message phản ánh trạng thái mới
func (h *ProductHandler) HandleToggleActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.ToggleActive(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		message := "Product deactivated successfully"
		if product.Active {
			message = "Product activated successfully"
		}
		h.HandleResponseWithMessage(c, common.StatusOK, message, product, nil)
		return nil
	})
}
