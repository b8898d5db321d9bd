package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementación del puerto RevenueRepository sobre PostgreSQL.
type RevenueRepo struct {
	pool *pgxpool.Pool
}

// NewRevenueRepository construye el adaptador de persistencia para receitas.
func NewRevenueRepository(pool *pgxpool.Pool) *RevenueRepo {
	return &RevenueRepo{pool: pool}
}

// Create persiste una receita.
func (r *RevenueRepo) Create(ctx context.Context, revenue *entity.Revenue) error {
	query := `
		INSERT INTO revenues (id, user_id, valor, cultura, tipo, data, descricao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		revenue.ID, revenue.UserID, revenue.Amount, revenue.Crop,
		revenue.Kind, revenue.Date, revenue.Description, revenue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

// ListByUser lista las receitas del usuario en orden de creación.
func (r *RevenueRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Revenue, error) {
	query := `
		SELECT id, user_id, valor, cultura, tipo, data, descricao, created_at
		FROM revenues WHERE user_id = $1 ORDER BY created_at LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.Amount, &rev.Crop,
			&rev.Kind, &rev.Date, &rev.Description, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// DeleteByIDAndUser elimina una receita propia; domain.ErrNotFound si no hay fila.
func (r *RevenueRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revenues WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
