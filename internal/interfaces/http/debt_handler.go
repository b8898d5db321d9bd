package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
)

// DebtHandler maneja el CRUD de dívidas y el cambio de status.
type DebtHandler struct {
	uc *usecase.DebtUseCase
}

// NewDebtHandler construye el handler de dívidas.
func NewDebtHandler(uc *usecase.DebtUseCase) *DebtHandler {
	return &DebtHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar dívida
// @Tags         debts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtRequest  true  "valor, credor, vencimento; status por defecto pendente"
// @Success      200   {object}  dto.DebtResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/debts [post]
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Valor <= 0 {
		return badRequest(c, "VALIDATION", "valor debe ser mayor que cero")
	}
	if in.Credor == "" {
		return badRequest(c, "VALIDATION", "credor es requerido")
	}
	if in.Vencimento.IsZero() {
		return badRequest(c, "VALIDATION", "vencimento es requerido")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar dívidas del usuario
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DebtResponse
// @Router       /api/debts [get]
func (h *DebtHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar status de una dívida
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID de la dívida"
// @Param        status  query  string  true  "Nuevo status (pendente, pago, ...)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/debts/{id}/status [patch]
func (h *DebtHandler) UpdateStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if err := h.uc.UpdateStatus(c.Context(), GetUserID(c), c.Params("id"), status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "status actualizado"})
}

// Delete godoc
// @Summary      Eliminar dívida
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la dívida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/debts/{id} [delete]
func (h *DebtHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "dívida eliminada"})
}
