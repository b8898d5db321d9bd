package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/analytics"
)

// DashboardHandler expone el resumen financiero y su versión PDF.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	report    *analytics.ReportUseCase
}

// NewDashboardHandler construye el handler del dashboard. report puede ser nil
// si la generación de PDF no está habilitada.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, report *analytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, report: report}
}

// Summary godoc
// @Summary      Resumen financiero del usuario
// @Description  Totales, lucro, agregados por cultura y dívidas pendentes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboard.Summarize(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Relatório financeiro en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.GenerateSummaryReport(c.Context(), GetCurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-financeiro.pdf"`)
	return c.Send(pdfBytes)
}
