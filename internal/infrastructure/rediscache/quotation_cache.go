package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/application/quotes"
)

const quotationKey = "quotations:b3:v1"

// DefaultQuotationTTL vida del snapshot de cotizaciones en caché.
const DefaultQuotationTTL = 60 * time.Second

var _ quotes.Cache = (*QuotationCache)(nil)

// QuotationCache implementa quotes.Cache serializando el listado como JSON
// bajo una única clave con TTL.
type QuotationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuotationCache construye el caché. ttl <= 0 usa DefaultQuotationTTL.
func NewQuotationCache(client *redis.Client, ttl time.Duration) *QuotationCache {
	if ttl <= 0 {
		ttl = DefaultQuotationTTL
	}
	return &QuotationCache{client: client, ttl: ttl}
}

// Get devuelve el snapshot cacheado o (nil, nil) en miss.
func (c *QuotationCache) Get(ctx context.Context) ([]dto.QuotationDTO, error) {
	raw, err := c.client.Get(ctx, quotationKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get cotizaciones: %w", err)
	}
	var quotations []dto.QuotationDTO
	if err := json.Unmarshal([]byte(raw), &quotations); err != nil {
		return nil, fmt.Errorf("decode cotizaciones cacheadas: %w", err)
	}
	return quotations, nil
}

// Set guarda el snapshot con TTL.
func (c *QuotationCache) Set(ctx context.Context, quotations []dto.QuotationDTO) error {
	raw, err := json.Marshal(quotations)
	if err != nil {
		return fmt.Errorf("encode cotizaciones: %w", err)
	}
	if err := c.client.Set(ctx, quotationKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cotizaciones: %w", err)
	}
	return nil
}
