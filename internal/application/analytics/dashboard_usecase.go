// Package analytics contiene el caso de uso del Dashboard financiero:
// agregación read-only de receitas, despesas y dívidas pendientes.
package analytics

import (
	"context"
	"fmt"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// cropOther etiqueta centinela para registros sin cultura.
const cropOther = "Outro"

// summaryFetchLimit techo de lectura por colección, igual que en los listados CRUD.
const summaryFetchLimit = 1000

// DashboardUseCase construye el resumen financiero de un usuario.
//
// Sin efectos secundarios: tres lecturas y una reducción en memoria,
// recalculada completa en cada llamada (el volumen por usuario es pequeño).
type DashboardUseCase struct {
	revenueRepo repository.RevenueRepository
	expenseRepo repository.ExpenseRepository
	debtRepo    repository.DebtRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	revenueRepo repository.RevenueRepository,
	expenseRepo repository.ExpenseRepository,
	debtRepo repository.DebtRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
		debtRepo:    debtRepo,
	}
}

// Summarize arma el DashboardSummaryDTO del usuario.
//
// Tres consultas en paralelo:
//  1. receitas del usuario
//  2. despesas del usuario
//  3. dívidas con status "pendente"
//
// Luego reduce: totales, lucro = receitas - despesas (puede ser negativo) y
// apertura por cultura en orden de lectura, con "Outro" para registros sin
// cultura. Las dívidas pendientes se devuelven tal cual.
func (uc *DashboardUseCase) Summarize(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type revenuesResult struct {
		items []*entity.Revenue
		err   error
	}
	type expensesResult struct {
		items []*entity.Expense
		err   error
	}
	type debtsResult struct {
		items []*entity.Debt
		err   error
	}

	revCh := make(chan revenuesResult, 1)
	expCh := make(chan expensesResult, 1)
	debtCh := make(chan debtsResult, 1)

	go func() {
		items, err := uc.revenueRepo.ListByUser(ctx, userID, summaryFetchLimit)
		revCh <- revenuesResult{items, err}
	}()
	go func() {
		items, err := uc.expenseRepo.ListByUser(ctx, userID, summaryFetchLimit)
		expCh <- expensesResult{items, err}
	}()
	go func() {
		items, err := uc.debtRepo.ListPendingByUser(ctx, userID, summaryFetchLimit)
		debtCh <- debtsResult{items, err}
	}()

	revenues := <-revCh
	expenses := <-expCh
	debts := <-debtCh

	if revenues.err != nil {
		return nil, fmt.Errorf("dashboard: receitas: %w", revenues.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: despesas: %w", expenses.err)
	}
	if debts.err != nil {
		return nil, fmt.Errorf("dashboard: dívidas pendientes: %w", debts.err)
	}

	summary := &dto.DashboardSummaryDTO{
		ReceitasPorCultura: make(map[string]float64),
		DespesasPorCultura: make(map[string]float64),
		DividasPendentes:   make([]dto.DebtResponse, 0, len(debts.items)),
	}

	for _, r := range revenues.items {
		summary.TotalReceitas += r.Amount
		summary.ReceitasPorCultura[cropLabel(r.Crop)] += r.Amount
	}
	for _, e := range expenses.items {
		summary.TotalDespesas += e.Amount
		summary.DespesasPorCultura[cropLabel(e.Crop)] += e.Amount
	}
	for _, d := range debts.items {
		summary.TotalDividasPendentes += d.Amount
		summary.DividasPendentes = append(summary.DividasPendentes, *usecase.ToDebtResponse(d))
	}
	summary.Lucro = summary.TotalReceitas - summary.TotalDespesas

	return summary, nil
}

func cropLabel(crop string) string {
	if crop == "" {
		return cropOther
	}
	return crop
}
