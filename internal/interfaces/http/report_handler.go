package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/usecase"
)

// ReportHandler dashboard, reportes y el informe con IA (protegido).
type ReportHandler struct {
	analytics *usecase.AnalyticsUseCase
	ai        *usecase.AIUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(analytics *usecase.AnalyticsUseCase, ai *usecase.AIUseCase) *ReportHandler {
	return &ReportHandler{analytics: analytics, ai: ai}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  metrics.DashboardSummary
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.analytics.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyRevenue godoc
// @Summary      Facturación por mes calendario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  metrics.MonthlyPoint
// @Router       /api/reports/monthly-revenue [get]
func (h *ReportHandler) MonthlyRevenue(c *fiber.Ctx) error {
	out, err := h.analytics.MonthlyRevenue()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Diez productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  metrics.ProductRank
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.analytics.TopProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockSnapshot godoc
// @Summary      Niveles de stock actuales
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  metrics.StockLevel
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockSnapshot(c *fiber.Ctx) error {
	out, err := h.analytics.StockSnapshot()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AIReport godoc
// @Summary      Informe de negocio generado con IA
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/reports/ai [post]
func (h *ReportHandler) AIReport(c *fiber.Ctx) error {
	// Siempre 200: los fallos del proveedor se degradan a un mensaje fijo.
	report := h.ai.BusinessReport(c.Context())
	return c.JSON(fiber.Map{"report": report})
}
