package repository

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para Revenue (DIP).
type RevenueRepository interface {
	Create(ctx context.Context, revenue *entity.Revenue) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Revenue, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
