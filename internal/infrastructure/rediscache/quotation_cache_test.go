package rediscache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/infrastructure/rediscache"
	"github.com/agrotrack/agrotrack-api/pkg/config"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *rediscache.QuotationCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := rediscache.NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return mr, rediscache.NewQuotationCache(client, time.Minute)
}

func sampleQuotations() []dto.QuotationDTO {
	return []dto.QuotationDTO{
		{Produto: "Soja", Preco: 131.02, Variacao: 0.40, Unidade: "R$/sc", Data: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)},
		{Produto: "Milho", Preco: 64.10, Variacao: -1.69, Unidade: "R$/sc", Data: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)},
	}
}

// Clave ausente → (nil, nil): el miss no es un error.
func TestQuotationCache_Miss(t *testing.T) {
	_, cache := newTestCache(t)

	out, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Set seguido de Get devuelve el snapshot intacto.
func TestQuotationCache_SetGet(t *testing.T) {
	_, cache := newTestCache(t)
	in := sampleQuotations()

	require.NoError(t, cache.Set(context.Background(), in))

	out, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// Pasado el TTL la clave desaparece y vuelve el miss.
func TestQuotationCache_ExpiraConTTL(t *testing.T) {
	mr, cache := newTestCache(t)

	require.NoError(t, cache.Set(context.Background(), sampleQuotations()))

	mr.FastForward(2 * time.Minute)

	out, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out, "tras el TTL el snapshot debe expirar")
}

// Contenido corrupto en la clave produce error de decodificación.
func TestQuotationCache_ContenidoCorrupto(t *testing.T) {
	mr, cache := newTestCache(t)
	require.NoError(t, mr.Set("quotations:b3:v1", "{no-es-json"))

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
}
