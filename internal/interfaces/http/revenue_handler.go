package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
)

// RevenueHandler maneja el CRUD de receitas.
type RevenueHandler struct {
	uc *usecase.RevenueUseCase
}

// NewRevenueHandler construye el handler de receitas.
func NewRevenueHandler(uc *usecase.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar receita
// @Tags         revenues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRevenueRequest  true  "valor, data; cultura/tipo/descricao opcionales"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/revenues [post]
func (h *RevenueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRevenueRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Valor <= 0 {
		return badRequest(c, "VALIDATION", "valor debe ser mayor que cero")
	}
	if in.Data.IsZero() {
		return badRequest(c, "VALIDATION", "data es requerida")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar receitas del usuario
// @Tags         revenues
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RevenueResponse
// @Router       /api/revenues [get]
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar receita
// @Tags         revenues
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la receita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/revenues/{id} [delete]
func (h *RevenueHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "receita eliminada"})
}
