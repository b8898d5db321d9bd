package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/analytics"
	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/memory"
)

const dashUserID = "user-dashboard"

type dashboardFixture struct {
	revenueUC   *usecase.RevenueUseCase
	expenseUC   *usecase.ExpenseUseCase
	debtUC      *usecase.DebtUseCase
	dashboardUC *analytics.DashboardUseCase
}

func newDashboardFixture() dashboardFixture {
	revenueRepo := memory.NewRevenueRepository()
	expenseRepo := memory.NewExpenseRepository()
	debtRepo := memory.NewDebtRepository()
	return dashboardFixture{
		revenueUC:   usecase.NewRevenueUseCase(revenueRepo),
		expenseUC:   usecase.NewExpenseUseCase(expenseRepo),
		debtUC:      usecase.NewDebtUseCase(debtRepo),
		dashboardUC: analytics.NewDashboardUseCase(revenueRepo, expenseRepo, debtRepo),
	}
}

func (f dashboardFixture) addRevenue(t *testing.T, valor float64, cultura string) {
	t.Helper()
	_, err := f.revenueUC.Create(context.Background(), dashUserID, dto.CreateRevenueRequest{
		Valor: valor, Cultura: cultura, Data: time.Now(),
	})
	require.NoError(t, err)
}

func (f dashboardFixture) addExpense(t *testing.T, valor float64, cultura string) {
	t.Helper()
	_, err := f.expenseUC.Create(context.Background(), dashUserID, dto.CreateExpenseRequest{
		Valor: valor, Categoria: "insumos", Cultura: cultura, Data: time.Now(),
	})
	require.NoError(t, err)
}

func (f dashboardFixture) addDebt(t *testing.T, valor float64, status string) {
	t.Helper()
	_, err := f.debtUC.Create(context.Background(), dashUserID, dto.CreateDebtRequest{
		Valor: valor, Credor: "Banco Rural", Vencimento: time.Now().AddDate(0, 3, 0), Status: status,
	})
	require.NoError(t, err)
}

// Totales y lucro: lucro = receitas - despesas, puede ser negativo.
func TestSummarize_TotalesYLucro(t *testing.T) {
	f := newDashboardFixture()
	f.addRevenue(t, 1000, "Soja")
	f.addRevenue(t, 500, "Milho")
	f.addExpense(t, 2000, "Soja")

	out, err := f.dashboardUC.Summarize(context.Background(), dashUserID)
	require.NoError(t, err)

	assert.InDelta(t, 1500, out.TotalReceitas, 1e-9)
	assert.InDelta(t, 2000, out.TotalDespesas, 1e-9)
	assert.InDelta(t, -500, out.Lucro, 1e-9, "el lucro negativo se reporta tal cual")
}

// Registros sin cultura se agrupan bajo "Outro".
func TestSummarize_CulturaVaciaVaAOutro(t *testing.T) {
	f := newDashboardFixture()
	f.addRevenue(t, 100, "Soja")
	f.addRevenue(t, 50, "")
	f.addExpense(t, 30, "")

	out, err := f.dashboardUC.Summarize(context.Background(), dashUserID)
	require.NoError(t, err)

	assert.InDelta(t, 100, out.ReceitasPorCultura["Soja"], 1e-9)
	assert.InDelta(t, 50, out.ReceitasPorCultura["Outro"], 1e-9)
	assert.InDelta(t, 30, out.DespesasPorCultura["Outro"], 1e-9)
}

// Solo las dívidas con status exactamente "pendente" cuentan en el total
// y aparecen en el listado.
func TestSummarize_SoloDividasPendentes(t *testing.T) {
	f := newDashboardFixture()
	f.addDebt(t, 700, "")     // se normaliza a pendente
	f.addDebt(t, 300, "pago") // excluida
	f.addDebt(t, 200, "renegociada")

	out, err := f.dashboardUC.Summarize(context.Background(), dashUserID)
	require.NoError(t, err)

	assert.InDelta(t, 700, out.TotalDividasPendentes, 1e-9)
	require.Len(t, out.DividasPendentes, 1)
	assert.Equal(t, "pendente", out.DividasPendentes[0].Status)
	assert.InDelta(t, 700, out.DividasPendentes[0].Valor, 1e-9)
}

// Usuario sin registros: ceros, maps vacíos no nulos y slice vacío no nulo,
// para que el JSON serialice {} y [] en lugar de null.
func TestSummarize_UsuarioSinRegistros(t *testing.T) {
	f := newDashboardFixture()

	out, err := f.dashboardUC.Summarize(context.Background(), "usuario-nuevo")
	require.NoError(t, err)

	assert.Zero(t, out.TotalReceitas)
	assert.Zero(t, out.TotalDespesas)
	assert.Zero(t, out.Lucro)
	assert.Zero(t, out.TotalDividasPendentes)
	assert.NotNil(t, out.ReceitasPorCultura)
	assert.NotNil(t, out.DespesasPorCultura)
	assert.NotNil(t, out.DividasPendentes)
	assert.Empty(t, out.DividasPendentes)
}
