package repository

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// DebtRepository define el puerto de persistencia para Debt (DIP).
type DebtRepository interface {
	Create(ctx context.Context, debt *entity.Debt) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Debt, error)
	// ListPendingByUser devuelve solo las deudas con status "pendente".
	ListPendingByUser(ctx context.Context, userID string, limit int) ([]*entity.Debt, error)
	UpdateStatusByIDAndUser(ctx context.Context, id, userID, status string) error
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
