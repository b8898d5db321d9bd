// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa en tests de casos de uso y de la capa HTTP; conserva el
// orden de inserción en los listados, igual que las consultas SQL por
// created_at.
package memory

import (
	"context"
	"sync"

	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository construye el repositorio.
func NewUserRepository() *UserRepo {
	return &UserRepo{}
}

// Create agrega un usuario; email duplicado devuelve domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

// FindByID devuelve el usuario o (nil, nil).
func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByEmail devuelve el usuario o (nil, nil).
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo repositorio de despesas en memoria.
type ExpenseRepo struct {
	mu    sync.RWMutex
	items []*entity.Expense
}

// NewExpenseRepository construye el repositorio.
func NewExpenseRepository() *ExpenseRepo {
	return &ExpenseRepo{}
}

// Create agrega una despesa.
func (r *ExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *expense
	r.items = append(r.items, &cp)
	return nil
}

// ListByUser lista las despesas del usuario en orden de inserción.
func (r *ExpenseRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Expense
	for _, e := range r.items {
		if e.UserID != userID {
			continue
		}
		cp := *e
		list = append(list, &cp)
		if len(list) >= limit {
			break
		}
	}
	return list, nil
}

// DeleteByIDAndUser elimina una despesa propia o devuelve domain.ErrNotFound.
func (r *ExpenseRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.items {
		if e.ID == id && e.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo repositorio de receitas en memoria.
type RevenueRepo struct {
	mu    sync.RWMutex
	items []*entity.Revenue
}

// NewRevenueRepository construye el repositorio.
func NewRevenueRepository() *RevenueRepo {
	return &RevenueRepo{}
}

// Create agrega una receita.
func (r *RevenueRepo) Create(_ context.Context, revenue *entity.Revenue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *revenue
	r.items = append(r.items, &cp)
	return nil
}

// ListByUser lista las receitas del usuario en orden de inserción.
func (r *RevenueRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Revenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Revenue
	for _, rev := range r.items {
		if rev.UserID != userID {
			continue
		}
		cp := *rev
		list = append(list, &cp)
		if len(list) >= limit {
			break
		}
	}
	return list, nil
}

// DeleteByIDAndUser elimina una receita propia o devuelve domain.ErrNotFound.
func (r *RevenueRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rev := range r.items {
		if rev.ID == id && rev.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.DebtRepository = (*DebtRepo)(nil)

// DebtRepo repositorio de dívidas en memoria.
type DebtRepo struct {
	mu    sync.RWMutex
	items []*entity.Debt
}

// NewDebtRepository construye el repositorio.
func NewDebtRepository() *DebtRepo {
	return &DebtRepo{}
}

// Create agrega una dívida.
func (r *DebtRepo) Create(_ context.Context, debt *entity.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *debt
	r.items = append(r.items, &cp)
	return nil
}

// ListByUser lista las dívidas del usuario en orden de inserción.
func (r *DebtRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Debt, error) {
	return r.listWhere(userID, limit, func(*entity.Debt) bool { return true })
}

// ListPendingByUser lista solo las dívidas con status "pendente".
func (r *DebtRepo) ListPendingByUser(_ context.Context, userID string, limit int) ([]*entity.Debt, error) {
	return r.listWhere(userID, limit, func(d *entity.Debt) bool {
		return d.Status == entity.DebtStatusPending
	})
}

func (r *DebtRepo) listWhere(userID string, limit int, match func(*entity.Debt) bool) ([]*entity.Debt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Debt
	for _, d := range r.items {
		if d.UserID != userID || !match(d) {
			continue
		}
		cp := *d
		list = append(list, &cp)
		if len(list) >= limit {
			break
		}
	}
	return list, nil
}

// UpdateStatusByIDAndUser cambia el status o devuelve domain.ErrNotFound.
func (r *DebtRepo) UpdateStatusByIDAndUser(_ context.Context, id, userID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.items {
		if d.ID == id && d.UserID == userID {
			d.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteByIDAndUser elimina una dívida propia o devuelve domain.ErrNotFound.
func (r *DebtRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.items {
		if d.ID == id && d.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.FieldRepository = (*FieldRepo)(nil)

// FieldRepo repositorio de talhões en memoria.
type FieldRepo struct {
	mu    sync.RWMutex
	items []*entity.Field
}

// NewFieldRepository construye el repositorio.
func NewFieldRepository() *FieldRepo {
	return &FieldRepo{}
}

// Create agrega un talhão.
func (r *FieldRepo) Create(_ context.Context, field *entity.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *field
	r.items = append(r.items, &cp)
	return nil
}

// GetByIDAndUser devuelve el talhão propio o (nil, nil).
func (r *FieldRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Field, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.items {
		if f.ID == id && f.UserID == userID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser lista los talhões del usuario en orden de inserción.
func (r *FieldRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Field, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Field
	for _, f := range r.items {
		if f.UserID != userID {
			continue
		}
		cp := *f
		list = append(list, &cp)
		if len(list) >= limit {
			break
		}
	}
	return list, nil
}

// DeleteByIDAndUser elimina un talhão propio o devuelve domain.ErrNotFound.
func (r *FieldRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.items {
		if f.ID == id && f.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.HarvestRepository = (*HarvestRepo)(nil)

// HarvestRepo repositorio de colheitas en memoria.
type HarvestRepo struct {
	mu    sync.RWMutex
	items []*entity.Harvest
}

// NewHarvestRepository construye el repositorio.
func NewHarvestRepository() *HarvestRepo {
	return &HarvestRepo{}
}

// Create agrega una colheita.
func (r *HarvestRepo) Create(_ context.Context, harvest *entity.Harvest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *harvest
	r.items = append(r.items, &cp)
	return nil
}

// ListByUser lista las colheitas del usuario en orden de inserción.
func (r *HarvestRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Harvest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Harvest
	for _, h := range r.items {
		if h.UserID != userID {
			continue
		}
		cp := *h
		list = append(list, &cp)
		if len(list) >= limit {
			break
		}
	}
	return list, nil
}

// DeleteByIDAndUser elimina una colheita propia o devuelve domain.ErrNotFound.
func (r *HarvestRepo) DeleteByIDAndUser(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.items {
		if h.ID == id && h.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
