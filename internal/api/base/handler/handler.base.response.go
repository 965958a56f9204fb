package basehdl

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/prisweb123/neuto-backend/internal/common"
	"github.com/prisweb123/neuto-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SuccessResponse trả về envelope thành công { success, message, data }
func SuccessResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JSONResponse(c, statusCode, fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// SuccessListResponse trả về envelope thành công kèm count cho các endpoint dạng danh sách
func SuccessListResponse(c fiber.Ctx, message string, data interface{}, count int) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
	})
}

// ErrorResponse chuẩn hóa lỗi về envelope { success: false, message, data: null }.
// Custom error giữ nguyên status code và message; lỗi không xác định trả 500,
// message chi tiết chỉ lộ ra ngoài môi trường production.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"success": false,
			"message": customErr.Message,
			"data":    nil,
		})
	}

	logger.GetErrorLogger().WithError(err).Error("Unhandled error")
	message := common.MsgInternalError
	if os.Getenv("GO_ENV") != "production" && err != nil {
		message = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessResponse(c, common.StatusOK, common.MsgSuccess, data)
}

// HandleResponseWithMessage như HandleResponse nhưng với message tùy chỉnh khi thành công
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponseWithMessage(c fiber.Ctx, statusCode int, message string, data interface{}, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessResponse(c, statusCode, message, data)
}

// HandleListResponse trả về danh sách kèm count
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleListResponse(c fiber.Ctx, message string, items []T, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessListResponse(c, message, items, len(items))
}
