package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

// DebtRepo implementación del puerto DebtRepository sobre PostgreSQL.
type DebtRepo struct {
	pool *pgxpool.Pool
}

// NewDebtRepository construye el adaptador de persistencia para dívidas.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepo {
	return &DebtRepo{pool: pool}
}

// Create persiste una dívida.
func (r *DebtRepo) Create(ctx context.Context, debt *entity.Debt) error {
	query := `
		INSERT INTO debts (id, user_id, valor, credor, vencimento, cultura, status, descricao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		debt.ID, debt.UserID, debt.Amount, debt.Creditor, debt.DueDate,
		debt.Crop, debt.Status, debt.Description, debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

// ListByUser lista las dívidas del usuario en orden de creación.
func (r *DebtRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Debt, error) {
	query := `
		SELECT id, user_id, valor, credor, vencimento, cultura, status, descricao, created_at
		FROM debts WHERE user_id = $1 ORDER BY created_at LIMIT $2`
	return r.list(ctx, query, userID, limit)
}

// ListPendingByUser lista solo las dívidas con status "pendente".
func (r *DebtRepo) ListPendingByUser(ctx context.Context, userID string, limit int) ([]*entity.Debt, error) {
	query := `
		SELECT id, user_id, valor, credor, vencimento, cultura, status, descricao, created_at
		FROM debts WHERE user_id = $1 AND status = $3 ORDER BY created_at LIMIT $2`
	return r.list(ctx, query, userID, limit, entity.DebtStatusPending)
}

func (r *DebtRepo) list(ctx context.Context, query, userID string, limit int, extra ...any) ([]*entity.Debt, error) {
	args := append([]any{userID, limit}, extra...)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.Creditor, &d.DueDate,
			&d.Crop, &d.Status, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatusByIDAndUser cambia el status de una dívida propia;
// domain.ErrNotFound si no existe o pertenece a otro usuario.
func (r *DebtRepo) UpdateStatusByIDAndUser(ctx context.Context, id, userID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE debts SET status = $3 WHERE id = $1 AND user_id = $2`, id, userID, status)
	if err != nil {
		return fmt.Errorf("update debt status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDAndUser elimina una dívida propia; domain.ErrNotFound si no hay fila.
func (r *DebtRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
