package basehdl

import (
	"time"

	"github.com/prisweb123/neuto-backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý các request hệ thống (health check)
type SystemHandler struct {
	startedAt time.Time
}

// NewSystemHandler tạo instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{startedAt: time.Now()}, nil
}

// HandleHealth trả về trạng thái sống của service
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return SuccessResponse(c, common.StatusOK, common.MsgSuccess, fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}
