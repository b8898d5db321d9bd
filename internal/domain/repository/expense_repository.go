package repository

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
// Toda operación está acotada por el usuario dueño: un id ajeno se comporta
// igual que un id inexistente (domain.ErrNotFound).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Expense, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
