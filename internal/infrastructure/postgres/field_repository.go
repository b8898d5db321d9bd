package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

var _ repository.FieldRepository = (*FieldRepo)(nil)

// FieldRepo implementación del puerto FieldRepository sobre PostgreSQL.
type FieldRepo struct {
	pool *pgxpool.Pool
}

// NewFieldRepository construye el adaptador de persistencia para talhões.
func NewFieldRepository(pool *pgxpool.Pool) *FieldRepo {
	return &FieldRepo{pool: pool}
}

// Create persiste un talhão.
func (r *FieldRepo) Create(ctx context.Context, field *entity.Field) error {
	query := `
		INSERT INTO fields (id, user_id, nome, area_ha, cultura, localizacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		field.ID, field.UserID, field.Name, field.AreaHa,
		field.Crop, field.Location, field.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert field: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un talhão por id y dueño; (nil, nil) si no existe o
// pertenece a otro usuario.
func (r *FieldRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Field, error) {
	query := `
		SELECT id, user_id, nome, area_ha, cultura, localizacao, created_at
		FROM fields WHERE id = $1 AND user_id = $2`
	var f entity.Field
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.Name, &f.AreaHa, &f.Crop, &f.Location, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get field: %w", err)
	}
	return &f, nil
}

// ListByUser lista los talhões del usuario en orden de creación.
func (r *FieldRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Field, error) {
	query := `
		SELECT id, user_id, nome, area_ha, cultura, localizacao, created_at
		FROM fields WHERE user_id = $1 ORDER BY created_at LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()
	var list []*entity.Field
	for rows.Next() {
		var f entity.Field
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.AreaHa,
			&f.Crop, &f.Location, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// DeleteByIDAndUser elimina un talhão propio; domain.ErrNotFound si no hay fila.
func (r *FieldRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fields WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
