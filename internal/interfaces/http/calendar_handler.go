package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
)

// CalendarHandler maneja la agenda (protegido).
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// List godoc
// @Summary      Listar eventos de agenda
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        upcoming  query  bool  false  "Solo eventos de hoy y mañana"
// @Success      200  {array}  entity.CalendarEvent
// @Router       /api/events [get]
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("upcoming") {
		out, err := h.uc.Upcoming()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear evento
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveEventRequest  true  "Datos del evento"
// @Success      201   {object}  entity.CalendarEvent
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar evento
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del evento"
// @Param        body  body  dto.SaveEventRequest  true  "Datos del evento"
// @Success      200   {object}  entity.CalendarEvent
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         calendar
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *CalendarHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
