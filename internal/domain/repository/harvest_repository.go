package repository

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// HarvestRepository define el puerto de persistencia para Harvest (DIP).
type HarvestRepository interface {
	Create(ctx context.Context, harvest *entity.Harvest) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Harvest, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
