package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

var _ repository.HarvestRepository = (*HarvestRepo)(nil)

// HarvestRepo implementación del puerto HarvestRepository sobre PostgreSQL.
type HarvestRepo struct {
	pool *pgxpool.Pool
}

// NewHarvestRepository construye el adaptador de persistencia para colheitas.
func NewHarvestRepository(pool *pgxpool.Pool) *HarvestRepo {
	return &HarvestRepo{pool: pool}
}

// Create persiste una colheita con sus valores derivados ya congelados.
func (r *HarvestRepo) Create(ctx context.Context, harvest *entity.Harvest) error {
	query := `
		INSERT INTO harvests (id, user_id, field_id, field_name, area_ha, cultura,
			quantidade_sacas, produtividade, data_colheita, observacoes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		harvest.ID, harvest.UserID, harvest.FieldID, harvest.FieldName, harvest.AreaHa,
		harvest.Crop, harvest.Quantity, harvest.Productivity, harvest.HarvestDate,
		harvest.Notes, harvest.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert harvest: %w", err)
	}
	return nil
}

// ListByUser lista las colheitas del usuario en orden de creación.
func (r *HarvestRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Harvest, error) {
	query := `
		SELECT id, user_id, field_id, field_name, area_ha, cultura,
			quantidade_sacas, produtividade, data_colheita, observacoes, created_at
		FROM harvests WHERE user_id = $1 ORDER BY created_at LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list harvests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Harvest
	for rows.Next() {
		var h entity.Harvest
		if err := rows.Scan(&h.ID, &h.UserID, &h.FieldID, &h.FieldName, &h.AreaHa,
			&h.Crop, &h.Quantity, &h.Productivity, &h.HarvestDate,
			&h.Notes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan harvest: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// DeleteByIDAndUser elimina una colheita propia; domain.ErrNotFound si no hay fila.
func (r *HarvestRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM harvests WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete harvest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
