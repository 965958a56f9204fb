// Package offerhdl xử lý các request HTTP của domain offer.
package offerhdl

import (
	"fmt"

	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/api/middleware"
	offerdto "github.com/prisweb123/neuto-backend/internal/api/offer/dto"
	models "github.com/prisweb123/neuto-backend/internal/api/offer/models"
	offersvc "github.com/prisweb123/neuto-backend/internal/api/offer/service"
	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// PriceOfferHandler xử lý các request quản lý báo giá
type PriceOfferHandler struct {
	*basehdl.BaseHandler[models.PriceOffer, offerdto.PriceOfferCreateInput, offerdto.PriceOfferCreateInput]
	priceOfferService *offersvc.PriceOfferService
}

// NewPriceOfferHandler tạo instance mới của PriceOfferHandler
func NewPriceOfferHandler() (*PriceOfferHandler, error) {
	priceOfferService, err := offersvc.NewPriceOfferService()
	if err != nil {
		return nil, fmt.Errorf("failed to create price offer service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.PriceOffer, offerdto.PriceOfferCreateInput, offerdto.PriceOfferCreateInput](priceOfferService)
	return &PriceOfferHandler{
		BaseHandler:       baseHandler,
		priceOfferService: priceOfferService,
	}, nil
}

// HandleCreate tạo báo giá mới, createdBy lấy từ user đã xác thực
func (h *PriceOfferHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		creator, ok := middleware.ActingUser(c)
		if !ok {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil))
			return nil
		}
		var input offerdto.PriceOfferCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		offer, err := h.priceOfferService.Create(c.Context(), &creator, &input)
		h.HandleResponseWithMessage(c, common.StatusCreated, "Price offer created successfully", offer, err)
		return nil
	})
}

// HandleGetPriceOffers lấy toàn bộ báo giá, mới tạo trước
func (h *PriceOfferHandler) HandleGetPriceOffers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		offers, err := h.priceOfferService.List(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		_ = basehdl.SuccessListResponse(c, "Price offers fetched successfully", offers, len(offers))
		return nil
	})
}

// HandleGetPriceOffer lấy một báo giá theo id
func (h *PriceOfferHandler) HandleGetPriceOffer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		offer, err := h.priceOfferService.GetById(c.Context(), objID)
		h.HandleResponseWithMessage(c, common.StatusOK, "Price offer fetched successfully", offer, err)
		return nil
	})
}

// HandleDelete xóa báo giá theo id
func (h *PriceOfferHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.priceOfferService.Delete(c.Context(), objID)
		h.HandleResponseWithMessage(c, common.StatusOK, "Price offer removed successfully", nil, err)
		return nil
	})
}
