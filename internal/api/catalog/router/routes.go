// Package router đăng ký các route thuộc domain catalog: Products, Packages, OptionPackages.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/prisweb123/neuto-backend/internal/api/catalog/handler"
	"github.com/prisweb123/neuto-backend/internal/api/middleware"
	apirouter "github.com/prisweb123/neuto-backend/internal/api/router"
)

// Register đăng ký tất cả route catalog lên group /api
func Register(api fiber.Router) error {
	if err := registerProductRoutes(api); err != nil {
		return err
	}
	if err := registerPackageRoutes(api); err != nil {
		return err
	}
	if err := registerOptionPackageRoutes(api); err != nil {
		return err
	}
	return nil
}

func registerProductRoutes(router fiber.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Route đọc là công khai. Đăng ký /get-all trước /:id để không bị
	// param route nuốt mất.
	router.Get("/products/get-all", productHandler.HandleGetActiveProducts)
	router.Get("/products", productHandler.HandleGetProducts)
	router.Get("/products/:id", productHandler.HandleGetProduct)

	createMiddleware := middleware.AuthMiddleware("Product.Create")
	apirouter.RegisterRouteWithMiddleware(router, "/products", "POST", "/", []fiber.Handler{createMiddleware}, productHandler.HandleCreate)

	updateMiddleware := middleware.AuthMiddleware("Product.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/products", "PUT", "/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleUpdate)

	deleteMiddleware := middleware.AuthMiddleware("Product.Delete")
	apirouter.RegisterRouteWithMiddleware(router, "/products", "DELETE", "/:id", []fiber.Handler{deleteMiddleware}, productHandler.HandleDelete)

	toggleMiddleware := middleware.AuthMiddleware("Product.ToggleActive")
	apirouter.RegisterRouteWithMiddleware(router, "/products", "PATCH", "/:id/toggle-active", []fiber.Handler{toggleMiddleware}, productHandler.HandleToggleActive)

	return nil
}

func registerPackageRoutes(router fiber.Router) error {
	packageHandler, err := cataloghdl.NewPackageHandler()
	if err != nil {
		return fmt.Errorf("failed to create package handler: %w", err)
	}

	router.Get("/packages", packageHandler.HandleGetPackages)
	router.Get("/packages/:id", packageHandler.HandleGetPackage)

	createMiddleware := middleware.AuthMiddleware("Package.Create")
	apirouter.RegisterRouteWithMiddleware(router, "/packages", "POST", "/", []fiber.Handler{createMiddleware}, packageHandler.HandleCreate)

	updateMiddleware := middleware.AuthMiddleware("Package.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/packages", "PUT", "/:id", []fiber.Handler{updateMiddleware}, packageHandler.HandleUpdate)

	deleteMiddleware := middleware.AuthMiddleware("Package.Delete")
	apirouter.RegisterRouteWithMiddleware(router, "/packages", "DELETE", "/:id", []fiber.Handler{deleteMiddleware}, packageHandler.HandleDelete)

	return nil
}

func registerOptionPackageRoutes(router fiber.Router) error {
	optionPackageHandler, err := cataloghdl.NewOptionPackageHandler()
	if err != nil {
		return fmt.Errorf("failed to create option package handler: %w", err)
	}

	router.Get("/option-packages", optionPackageHandler.HandleGetOptionPackages)
	router.Get("/option-packages/:id", optionPackageHandler.HandleGetOptionPackage)

	createMiddleware := middleware.AuthMiddleware("OptionPackage.Create")
	apirouter.RegisterRouteWithMiddleware(router, "/option-packages", "POST", "/", []fiber.Handler{createMiddleware}, optionPackageHandler.HandleCreate)

	updateMiddleware := middleware.AuthMiddleware("OptionPackage.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/option-packages", "PUT", "/:id", []fiber.Handler{updateMiddleware}, optionPackageHandler.HandleUpdate)

	deleteMiddleware := middleware.AuthMiddleware("OptionPackage.Delete")
	apirouter.RegisterRouteWithMiddleware(router, "/option-packages", "DELETE", "/:id", []fiber.Handler{deleteMiddleware}, optionPackageHandler.HandleDelete)

	return nil
}
