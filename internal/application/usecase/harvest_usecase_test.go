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

const (
	ownerID    = "user-owner"
	intruderID = "user-intruder"
)

type harvestFixture struct {
	fieldUC   *usecase.FieldUseCase
	harvestUC *usecase.HarvestUseCase
}

func newHarvestFixture() harvestFixture {
	fieldRepo := memory.NewFieldRepository()
	return harvestFixture{
		fieldUC:   usecase.NewFieldUseCase(fieldRepo),
		harvestUC: usecase.NewHarvestUseCase(memory.NewHarvestRepository(), fieldRepo),
	}
}

func (f harvestFixture) createField(t *testing.T, userID string, areaHa float64) *dto.FieldResponse {
	t.Helper()
	field, err := f.fieldUC.Create(context.Background(), userID, dto.CreateFieldRequest{
		Nome:    "Talhão Norte",
		AreaHa:  areaHa,
		Cultura: "Soja",
	})
	require.NoError(t, err)
	return field
}

// Productividad derivada en la creación: 153 sacas / 25.5 ha = 6.00 sacas/ha.
func TestHarvestCreate_DerivaProdutividade(t *testing.T) {
	f := newHarvestFixture()
	field := f.createField(t, ownerID, 25.5)

	out, err := f.harvestUC.Create(context.Background(), ownerID, dto.CreateHarvestRequest{
		FieldID:         field.ID,
		Cultura:         "Soja",
		QuantidadeSacas: 153,
		DataColheita:    time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.InDelta(t, 6.00, out.Produtividade, 1e-9)
	assert.Equal(t, field.ID, out.FieldID)
	assert.Equal(t, "Talhão Norte", out.FieldName, "el nombre del talhão queda congelado en la colheita")
	assert.InDelta(t, 25.5, out.AreaHa, 1e-9)
}

// El redondeo es a 2 decimales: 100 / 3 = 33.33.
func TestHarvestCreate_RedondeaADosDecimales(t *testing.T) {
	f := newHarvestFixture()
	field := f.createField(t, ownerID, 3)

	out, err := f.harvestUC.Create(context.Background(), ownerID, dto.CreateHarvestRequest{
		FieldID:         field.ID,
		QuantidadeSacas: 100,
		DataColheita:    time.Now(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 33.33, out.Produtividade, 1e-9)
}

// Talhão inexistente → ErrNotFound.
func TestHarvestCreate_TalhaoInexistente(t *testing.T) {
	f := newHarvestFixture()

	_, err := f.harvestUC.Create(context.Background(), ownerID, dto.CreateHarvestRequest{
		FieldID:         "no-existe",
		QuantidadeSacas: 10,
		DataColheita:    time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Talhão de otro usuario → el mismo ErrNotFound, sin revelar existencia.
func TestHarvestCreate_TalhaoAjeno(t *testing.T) {
	f := newHarvestFixture()
	field := f.createField(t, ownerID, 10)

	_, err := f.harvestUC.Create(context.Background(), intruderID, dto.CreateHarvestRequest{
		FieldID:         field.ID,
		QuantidadeSacas: 10,
		DataColheita:    time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un talhão ajeno debe ser indistinguible de uno inexistente")
}

// List solo devuelve colheitas del usuario que consulta.
func TestHarvestList_AisladaPorUsuario(t *testing.T) {
	f := newHarvestFixture()
	field := f.createField(t, ownerID, 10)

	_, err := f.harvestUC.Create(context.Background(), ownerID, dto.CreateHarvestRequest{
		FieldID:         field.ID,
		QuantidadeSacas: 50,
		DataColheita:    time.Now(),
	})
	require.NoError(t, err)

	mine, err := f.harvestUC.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := f.harvestUC.List(context.Background(), intruderID)
	require.NoError(t, err)
	assert.Empty(t, others)
}

// Delete de colheita ajena → ErrNotFound; la propia sigue existiendo.
func TestHarvestDelete_AjenaNoEncontrada(t *testing.T) {
	f := newHarvestFixture()
	field := f.createField(t, ownerID, 10)

	created, err := f.harvestUC.Create(context.Background(), ownerID, dto.CreateHarvestRequest{
		FieldID:         field.ID,
		QuantidadeSacas: 50,
		DataColheita:    time.Now(),
	})
	require.NoError(t, err)

	err = f.harvestUC.Delete(context.Background(), intruderID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mine, err := f.harvestUC.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1, "el intento ajeno no debe borrar la colheita")
}
