package quotes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/quotes"
)

// fakeCache implementa quotes.Cache en memoria para los tests.
type fakeCache struct {
	stored  []dto.QuotationDTO
	getErr  error
	setErr  error
	getHits int
	setHits int
}

func (c *fakeCache) Get(_ context.Context) ([]dto.QuotationDTO, error) {
	c.getHits++
	return c.stored, c.getErr
}

func (c *fakeCache) Set(_ context.Context, quotations []dto.QuotationDTO) error {
	c.setHits++
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = quotations
	return nil
}

// Sin caché: cinco productos, precios dentro de ±5% del precio base.
func TestListB3_ProductosYRangoDeVariacion(t *testing.T) {
	uc := quotes.NewQuotationUseCase(nil)

	out, err := uc.ListB3(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 5)

	base := map[string]float64{
		"Soja":    130.50,
		"Milho":   65.20,
		"Trigo":   95.80,
		"Algodão": 180.30,
		"Aveia":   45.60,
	}
	for _, q := range out {
		b, ok := base[q.Produto]
		require.True(t, ok, "producto inesperado: %s", q.Produto)
		assert.Equal(t, "R$/sc", q.Unidade)
		assert.GreaterOrEqual(t, q.Variacao, -5.0)
		assert.LessOrEqual(t, q.Variacao, 5.0)
		// El precio final queda dentro del rango del jitter (con margen de redondeo).
		assert.InDelta(t, b, q.Preco, b*0.05+0.01)
		assert.False(t, q.Data.IsZero())
	}
}

// Hit de caché: se devuelve el snapshot cacheado sin regenerar.
func TestListB3_CacheHit(t *testing.T) {
	cached := []dto.QuotationDTO{{Produto: "Soja", Preco: 128.00, Unidade: "R$/sc"}}
	cache := &fakeCache{stored: cached}
	uc := quotes.NewQuotationUseCase(cache)

	out, err := uc.ListB3(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, out)
	assert.Equal(t, 1, cache.getHits)
	assert.Zero(t, cache.setHits, "un hit no debe reescribir el caché")
}

// Miss de caché: se genera y se guarda el snapshot.
func TestListB3_CacheMissGuarda(t *testing.T) {
	cache := &fakeCache{}
	uc := quotes.NewQuotationUseCase(cache)

	out, err := uc.ListB3(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 5)
	assert.Equal(t, 1, cache.setHits)
	assert.Equal(t, out, cache.stored)
}

// El caché es best-effort: sus errores nunca rompen la respuesta.
func TestListB3_ErroresDeCacheIgnorados(t *testing.T) {
	cache := &fakeCache{
		getErr: errors.New("redis caído"),
		setErr: errors.New("redis caído"),
	}
	uc := quotes.NewQuotationUseCase(cache)

	out, err := uc.ListB3(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 5)
}
