// Package quotes implementa el listado de cotizaciones B3.
//
// No es un feed real de mercado: es un stand-in con precios base estáticos y
// un jitter aleatorio de ±5%. El caché Redis (opcional) estabiliza la
// respuesta durante su TTL para que ráfagas de consultas vean el mismo precio.
package quotes

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
)

// Cache puerto del caché de cotizaciones. Get devuelve (nil, nil) en miss.
type Cache interface {
	Get(ctx context.Context) ([]dto.QuotationDTO, error)
	Set(ctx context.Context, quotations []dto.QuotationDTO) error
}

// Tabla base de precios en R$/saca.
var basePrices = []struct {
	product string
	price   float64
}{
	{"Soja", 130.50},
	{"Milho", 65.20},
	{"Trigo", 95.80},
	{"Algodão", 180.30},
	{"Aveia", 45.60},
}

const quotationUnit = "R$/sc"

// QuotationUseCase genera el listado de cotizaciones, con caché opcional.
type QuotationUseCase struct {
	cache Cache // nil = sin caché
}

// NewQuotationUseCase construye el caso de uso. cache puede ser nil.
func NewQuotationUseCase(cache Cache) *QuotationUseCase {
	return &QuotationUseCase{cache: cache}
}

// ListB3 devuelve una cotización por producto de la tabla base, con variación
// uniforme en [-5%, +5%] y precio redondeado a 2 decimales.
//
// Los errores del caché se ignoran: el caché es best-effort y la respuesta
// se regenera localmente si Redis no está disponible.
func (uc *QuotationUseCase) ListB3(ctx context.Context) ([]dto.QuotationDTO, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	now := time.Now().UTC()
	quotations := make([]dto.QuotationDTO, 0, len(basePrices))
	for _, base := range basePrices {
		variation := rand.Float64()*10 - 5
		price := base.price * (1 + variation/100)
		quotations = append(quotations, dto.QuotationDTO{
			Produto:  base.product,
			Preco:    round2(price),
			Variacao: round2(variation),
			Unidade:  quotationUnit,
			Data:     now,
		})
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, quotations)
	}
	return quotations, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
