package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenroad/licorera-api/internal/application/analytics"
	"github.com/greenroad/licorera-api/internal/application/dto"
)

// DashboardHandler maneja las métricas del panel de administración.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las métricas del inventario vivo.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_value,
// low_stock_count, total_profit). Se recalcula en cada petición.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
