package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
)

// GoalHandler maneja las metas de venta mensuales (protegido).
type GoalHandler struct {
	uc *usecase.GoalUseCase
}

// NewGoalHandler construye el handler.
func NewGoalHandler(uc *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// List godoc
// @Summary      Listar metas de venta
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.SalesGoal
// @Router       /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar meta del mes (upsert)
// @Tags         goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveGoalRequest  true  "Meta del mes"
// @Success      200   {object}  entity.SalesGoal
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/goals [put]
func (h *GoalHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Meta vs. realizado de un mes
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Param        month  path  string  true  "Mes YYYY-MM"
// @Success      200  {object}  metrics.GoalProgress
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/goals/{month}/progress [get]
func (h *GoalHandler) Progress(c *fiber.Ctx) error {
	out, err := h.uc.Progress(c.Params("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Trend godoc
// @Summary      Seguimiento de los últimos seis meses
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  metrics.GoalProgress
// @Router       /api/goals/trend [get]
func (h *GoalHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.Trend()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
