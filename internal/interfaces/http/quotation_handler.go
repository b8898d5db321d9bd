package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/quotes"
)

// QuotationHandler expone las cotizaciones de productos agrícolas.
type QuotationHandler struct {
	uc *quotes.QuotationUseCase
}

// NewQuotationHandler construye el handler de cotizaciones.
func NewQuotationHandler(uc *quotes.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// ListB3 godoc
// @Summary      Cotizaciones B3 (simuladas)
// @Description  Precios base con variación aleatoria de ±5%. Endpoint público.
// @Tags         quotations
// @Produce      json
// @Success      200  {array}  dto.QuotationDTO
// @Router       /api/quotations/b3 [get]
func (h *QuotationHandler) ListB3(c *fiber.Ctx) error {
	out, err := h.uc.ListB3(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
