// Package router đăng ký các route thuộc domain auth: Users, System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/prisweb123/neuto-backend/internal/api/auth/handler"
	basehdl "github.com/prisweb123/neuto-backend/internal/api/base/handler"
	"github.com/prisweb123/neuto-backend/internal/api/middleware"
	apirouter "github.com/prisweb123/neuto-backend/internal/api/router"
)

// Register đăng ký tất cả route auth (users, system) lên group /api
func Register(api fiber.Router) error {
	if err := registerSystemRoutes(api); err != nil {
		return err
	}
	if err := registerUserRoutes(api); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerUserRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Login là route công khai duy nhất của domain này
	router.Post("/users/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)

	createMiddleware := middleware.AuthMiddleware("User.Create")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "POST", "/register", []fiber.Handler{createMiddleware}, userHandler.HandleRegister)

	readMiddleware := middleware.AuthMiddleware("User.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/", []fiber.Handler{readMiddleware}, userHandler.HandleGetUsers)

	updateMiddleware := middleware.AuthMiddleware("User.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PUT", "/:id", []fiber.Handler{updateMiddleware}, userHandler.HandleUpdateUser)

	deleteMiddleware := middleware.AuthMiddleware("User.Delete")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "DELETE", "/:id", []fiber.Handler{deleteMiddleware}, userHandler.HandleDeleteUser)

	toggleMiddleware := middleware.AuthMiddleware("User.ToggleActive")
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PATCH", "/:id/toggle-active", []fiber.Handler{toggleMiddleware}, userHandler.HandleToggleActive)

	return nil
}
