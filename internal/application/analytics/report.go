package analytics

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// ReportGenerator puerto para renderizar el resumen financiero como PDF.
// Implementado en infrastructure/pdf con Maroto.
type ReportGenerator interface {
	GenerateSummaryPDF(ctx context.Context, user *entity.User, summary *dto.DashboardSummaryDTO) ([]byte, error)
}

// ReportUseCase genera el informe PDF del dashboard: mismo Summarize,
// renderizado por el generador inyectado.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// GenerateSummaryReport calcula el resumen del usuario y lo renderiza a PDF.
func (uc *ReportUseCase) GenerateSummaryReport(ctx context.Context, user *entity.User) ([]byte, error) {
	summary, err := uc.dashboard.Summarize(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSummaryPDF(ctx, user, summary)
}
