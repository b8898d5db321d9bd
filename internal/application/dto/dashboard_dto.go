package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
//
// Vista calculada, nunca persistida: totales financieros del usuario más la
// apertura por cultura. Los registros sin cultura se agrupan bajo "Outro".
type DashboardSummaryDTO struct {
	TotalReceitas         float64 `json:"total_receitas"`
	TotalDespesas         float64 `json:"total_despesas"`
	Lucro                 float64 `json:"lucro"` // puede ser negativo
	TotalDividasPendentes float64 `json:"total_dividas_pendentes"`

	ReceitasPorCultura map[string]float64 `json:"receitas_por_cultura"`
	DespesasPorCultura map[string]float64 `json:"despesas_por_cultura"`

	// Deudas con status "pendente", tal cual están almacenadas.
	DividasPendentes []DebtResponse `json:"dividas_pendentes"`
}
