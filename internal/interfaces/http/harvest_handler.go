package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
)

// HarvestHandler maneja el CRUD de colheitas.
type HarvestHandler struct {
	uc *usecase.HarvestUseCase
}

// NewHarvestHandler construye el handler de colheitas.
func NewHarvestHandler(uc *usecase.HarvestUseCase) *HarvestHandler {
	return &HarvestHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar colheita
// @Description  El talhão debe pertenecer al usuario; la productividad (sacas/ha)
// @Description  se calcula y congela en la creación.
// @Tags         harvests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHarvestRequest  true  "field_id, quantidade_sacas > 0, data_colheita"
// @Success      200   {object}  dto.HarvestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/harvests [post]
func (h *HarvestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHarvestRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.FieldID == "" {
		return badRequest(c, "VALIDATION", "field_id es requerido")
	}
	if in.QuantidadeSacas <= 0 {
		return badRequest(c, "VALIDATION", "quantidade_sacas debe ser mayor que cero")
	}
	if in.DataColheita.IsZero() {
		return badRequest(c, "VALIDATION", "data_colheita es requerida")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar colheitas del usuario
// @Tags         harvests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HarvestResponse
// @Router       /api/harvests [get]
func (h *HarvestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar colheita
// @Tags         harvests
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la colheita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/harvests/{id} [delete]
func (h *HarvestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "colheita eliminada"})
}
