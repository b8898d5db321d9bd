// Package pdf implementa la generación del Relatório Financeiro del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: AgroTrack + nombre del productor │ fecha emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: receitas / despesas / lucro / dívidas pendentes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: receitas por cultura                                │
//	│  TABLA: despesas por cultura                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: dívidas pendentes (credor, vencimento, valor)       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/agrotrack/agrotrack-api/internal/application/analytics"
	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el PDF del resumen financiero y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(
	_ context.Context,
	user *entity.User,
	summary *dto.DashboardSummaryDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro AgroTrack", true).
		WithAuthor(user.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("RECEITAS POR CULTURA"))
	for _, r := range cropRows(summary.ReceitasPorCultura) {
		m.AddRows(r)
	}
	m.AddRows(sectionTitleRow("DESPESAS POR CULTURA"))
	for _, r := range cropRows(summary.DespesasPorCultura) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("DÍVIDAS PENDENTES"))
	for _, r := range debtRows(summary.DividasPendentes) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + productor (izq) y fecha de emisión (der).
func headerRow(user *entity.User) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("AgroTrack — Relatório Financeiro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(user.Name+"  ·  "+user.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido em: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Plano: "+user.Plan, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// totalsRow: los cuatro KPIs principales. El lucro negativo va en rojo.
func totalsRow(summary *dto.DashboardSummaryDTO) core.Row {
	kpi := func(label string, value float64, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(formatMoney(value), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Color: valueColor,
			}),
		)
	}
	lucroColor := colorPrimary
	if summary.Lucro < 0 {
		lucroColor = colorRed
	}
	return row.New(16).Add(
		kpi("RECEITAS", summary.TotalReceitas, colorPrimary),
		kpi("DESPESAS", summary.TotalDespesas, colorGray),
		kpi("LUCRO", summary.Lucro, lucroColor),
		kpi("DÍVIDAS PENDENTES", summary.TotalDividasPendentes, colorRed),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// cropRows: una fila por cultura, ordenadas alfabéticamente para que el PDF
// sea estable entre generaciones (los maps de Go no tienen orden).
func cropRows(byCrop map[string]float64) []core.Row {
	crops := make([]string, 0, len(byCrop))
	for crop := range byCrop {
		crops = append(crops, crop)
	}
	sort.Strings(crops)

	if len(crops) == 0 {
		return []core.Row{emptyRow("Sem registros.")}
	}

	rows := make([]core.Row, 0, len(crops))
	for _, crop := range crops {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(crop, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(4).Add(text.New(formatMoney(byCrop[crop]), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// debtRows: una fila por dívida pendente.
func debtRows(debts []dto.DebtResponse) []core.Row {
	if len(debts) == 0 {
		return []core.Row{emptyRow("Nenhuma dívida pendente.")}
	}
	rows := make([]core.Row, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(d.Credor, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(3).Add(text.New("Venc.: "+d.Vencimento.Format("02/01/2006"), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
			col.New(4).Add(text.New(formatMoney(d.Valor), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un valor en reales con dos decimales: "R$ 1234.56".
func formatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
