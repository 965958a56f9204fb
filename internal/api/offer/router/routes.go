// Package router đăng ký các route thuộc domain offer: PriceOffers.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/prisweb123/neuto-backend/internal/api/middleware"
	offerhdl "github.com/prisweb123/neuto-backend/internal/api/offer/handler"
	apirouter "github.com/prisweb123/neuto-backend/internal/api/router"
)

// Register đăng ký tất cả route offer lên group /api.
// Mọi route báo giá đều yêu cầu đăng nhập, không có route công khai.
func Register(api fiber.Router) error {
	priceOfferHandler, err := offerhdl.NewPriceOfferHandler()
	if err != nil {
		return fmt.Errorf("failed to create price offer handler: %w", err)
	}

	createMiddleware := middleware.AuthMiddleware("PriceOffer.Create")
	apirouter.RegisterRouteWithMiddleware(api, "/priceoffers", "POST", "/", []fiber.Handler{createMiddleware}, priceOfferHandler.HandleCreate)

	readMiddleware := middleware.AuthMiddleware("PriceOffer.Read")
	apirouter.RegisterRouteWithMiddleware(api, "/priceoffers", "GET", "/", []fiber.Handler{readMiddleware}, priceOfferHandler.HandleGetPriceOffers)
	apirouter.RegisterRouteWithMiddleware(api, "/priceoffers", "GET", "/:id", []fiber.Handler{readMiddleware}, priceOfferHandler.HandleGetPriceOffer)

	deleteMiddleware := middleware.AuthMiddleware("PriceOffer.Delete")
	apirouter.RegisterRouteWithMiddleware(api, "/priceoffers", "DELETE", "/:id", []fiber.Handler{deleteMiddleware}, priceOfferHandler.HandleDelete)

	return nil
}
