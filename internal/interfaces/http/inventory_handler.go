package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/application/usecase"
)

// InventoryHandler maneja las entradas de stock (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListEntries godoc
// @Summary      Histórico de entradas de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.StockEntry
// @Router       /api/inventory/entries [get]
func (h *InventoryHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReceiveStock godoc
// @Summary      Registrar entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEntryRequest  true  "Entrada de mercadería"
// @Success      201   {object}  entity.StockEntry
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) ReceiveStock(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ReceiveStock(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
