package repository

import (
	"context"

	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// FieldRepository define el puerto de persistencia para Field (DIP).
// GetByIDAndUser devuelve (nil, nil) si la parcela no existe o pertenece a
// otro usuario; los dos casos son indistinguibles a propósito.
type FieldRepository interface {
	Create(ctx context.Context, field *entity.Field) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Field, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Field, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
