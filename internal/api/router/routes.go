// Package router cung cấp các helper đăng ký route dùng chung cho các domain.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// RegisterFunc là hàm đăng ký route của một domain lên group /api
type RegisterFunc func(api fiber.Router) error

// RegisterRouteWithMiddleware đăng ký một route kèm middleware.
//
// LƯU Ý (Fiber v3): KHÔNG gắn guard qua group.Use() vì middleware của group áp
// dụng theo prefix cho mọi route bên dưới, kể cả route công khai cùng prefix
// (ví dụ /users/login sẽ dính guard của /users). Phải gắn middleware theo từng
// route bằng dạng variadic của Fiber v3: router.Get(path, handler, mw...).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	fullPath := prefix + path
	if path == "/" {
		fullPath = prefix
	}

	switch method {
	case "GET":
		router.Get(fullPath, handler, middlewares...)
	case "POST":
		router.Post(fullPath, handler, middlewares...)
	case "PUT":
		router.Put(fullPath, handler, middlewares...)
	case "PATCH":
		router.Patch(fullPath, handler, middlewares...)
	case "DELETE":
		router.Delete(fullPath, handler, middlewares...)
	}
}

// SetupRoutes đăng ký route của tất cả các domain lên app dưới prefix /api
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	for _, reg := range regs {
		if err := reg(api); err != nil {
			return err
		}
	}
	return nil
}
