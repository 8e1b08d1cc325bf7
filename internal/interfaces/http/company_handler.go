package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hspsystem/gestor-api/internal/application/usecase"
)

// CompanyHandler consulta de empresas por CNPJ (protegido).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Lookup godoc
// @Summary      Consultar empresa por CNPJ
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ (14 dígitos, con o sin puntuación)"
// @Success      200  {object}  ports.CompanyRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{cnpj} [get]
func (h *CompanyHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.Context(), c.Params("cnpj"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
