// Package usecase contiene los casos de uso CRUD de los recursos financieros
// y de producción. Todas las operaciones están acotadas por el usuario dueño.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// listFetchLimit techo de lectura por colección en los listados.
// Es una política de volumen (los datos por usuario son pequeños), no paginación.
const listFetchLimit = 1000

// ExpenseUseCase casos de uso CRUD para despesas.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra una despesa del usuario.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      in.Valor,
		Category:    in.Categoria,
		Crop:        in.Cultura,
		Kind:        in.Tipo,
		Date:        in.Data,
		Description: in.Descricao,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve las despesas del usuario.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, listFetchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return items, nil
}

// Delete elimina una despesa propia. Devuelve domain.ErrNotFound si no existe
// o pertenece a otro usuario.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteByIDAndUser(ctx, id, userID)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Valor:     e.Amount,
		Categoria: e.Category,
		Cultura:   e.Crop,
		Tipo:      e.Kind,
		Data:      e.Date,
		Descricao: e.Description,
		CreatedAt: e.CreatedAt,
	}
}
