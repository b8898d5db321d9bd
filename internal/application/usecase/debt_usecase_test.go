package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/memory"
)

func newDebtUC() *usecase.DebtUseCase {
	return usecase.NewDebtUseCase(memory.NewDebtRepository())
}

func createDebt(t *testing.T, uc *usecase.DebtUseCase, userID, status string) *dto.DebtResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), userID, dto.CreateDebtRequest{
		Valor:      1500.00,
		Credor:     "Cooperativa Agrícola",
		Vencimento: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     status,
	})
	require.NoError(t, err)
	return out
}

// Status vacío se normaliza a "pendente" en la creación.
func TestDebtCreate_StatusPorDefectoPendente(t *testing.T) {
	uc := newDebtUC()
	out := createDebt(t, uc, ownerID, "")
	assert.Equal(t, "pendente", out.Status)
}

// El status es texto libre: cualquier valor no vacío se almacena tal cual.
func TestDebtCreate_StatusLibre(t *testing.T) {
	uc := newDebtUC()
	out := createDebt(t, uc, ownerID, "renegociada")
	assert.Equal(t, "renegociada", out.Status)
}

// UpdateStatus acepta cualquier valor no vacío y rechaza el vacío.
func TestDebtUpdateStatus(t *testing.T) {
	uc := newDebtUC()
	debt := createDebt(t, uc, ownerID, "")

	err := uc.UpdateStatus(context.Background(), ownerID, debt.ID, "pago")
	require.NoError(t, err)

	list, err := uc.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pago", list[0].Status)

	err = uc.UpdateStatus(context.Background(), ownerID, debt.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status vacío debe rechazarse")
}

// UpdateStatus sobre dívida ajena → ErrNotFound.
func TestDebtUpdateStatus_AjenaNoEncontrada(t *testing.T) {
	uc := newDebtUC()
	debt := createDebt(t, uc, ownerID, "")

	err := uc.UpdateStatus(context.Background(), intruderID, debt.ID, "pago")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
