package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// RevenueUseCase casos de uso CRUD para receitas.
type RevenueUseCase struct {
	repo repository.RevenueRepository
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository) *RevenueUseCase {
	return &RevenueUseCase{repo: repo}
}

// Create registra una receita del usuario.
func (uc *RevenueUseCase) Create(ctx context.Context, userID string, in dto.CreateRevenueRequest) (*dto.RevenueResponse, error) {
	revenue := &entity.Revenue{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      in.Valor,
		Crop:        in.Cultura,
		Kind:        in.Tipo,
		Date:        in.Data,
		Description: in.Descricao,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, revenue); err != nil {
		return nil, err
	}
	return toRevenueResponse(revenue), nil
}

// List devuelve las receitas del usuario.
func (uc *RevenueUseCase) List(ctx context.Context, userID string) ([]dto.RevenueResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, listFetchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RevenueResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRevenueResponse(r))
	}
	return items, nil
}

// Delete elimina una receita propia.
func (uc *RevenueUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteByIDAndUser(ctx, id, userID)
}

func toRevenueResponse(r *entity.Revenue) *dto.RevenueResponse {
	if r == nil {
		return nil
	}
	return &dto.RevenueResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Valor:     r.Amount,
		Cultura:   r.Crop,
		Tipo:      r.Kind,
		Data:      r.Date,
		Descricao: r.Description,
		CreatedAt: r.CreatedAt,
	}
}
