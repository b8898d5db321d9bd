package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
)

// FieldHandler maneja el CRUD de talhões.
type FieldHandler struct {
	uc *usecase.FieldUseCase
}

// NewFieldHandler construye el handler de talhões.
func NewFieldHandler(uc *usecase.FieldUseCase) *FieldHandler {
	return &FieldHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar talhão
// @Tags         fields
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFieldRequest  true  "nome, area_ha > 0; cultura/localizacao opcionales"
// @Success      200   {object}  dto.FieldResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fields [post]
func (h *FieldHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Nome == "" {
		return badRequest(c, "VALIDATION", "nome es requerido")
	}
	if in.AreaHa <= 0 {
		return badRequest(c, "VALIDATION", "area_ha debe ser mayor que cero")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar talhões del usuario
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FieldResponse
// @Router       /api/fields [get]
func (h *FieldHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar talhão
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del talhão"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fields/{id} [delete]
func (h *FieldHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "talhão eliminado"})
}
