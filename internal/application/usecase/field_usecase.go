package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// FieldUseCase casos de uso CRUD para talhões.
type FieldUseCase struct {
	repo repository.FieldRepository
}

// NewFieldUseCase construye el caso de uso.
func NewFieldUseCase(repo repository.FieldRepository) *FieldUseCase {
	return &FieldUseCase{repo: repo}
}

// Create registra un talhão del usuario.
func (uc *FieldUseCase) Create(ctx context.Context, userID string, in dto.CreateFieldRequest) (*dto.FieldResponse, error) {
	field := &entity.Field{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Nome,
		AreaHa:    in.AreaHa,
		Crop:      in.Cultura,
		Location:  in.Localizacao,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, field); err != nil {
		return nil, err
	}
	return toFieldResponse(field), nil
}

// List devuelve los talhões del usuario.
func (uc *FieldUseCase) List(ctx context.Context, userID string) ([]dto.FieldResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, listFetchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FieldResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFieldResponse(f))
	}
	return items, nil
}

// Delete elimina un talhão propio. Las colheitas ya registradas conservan
// el nombre, área y productividad copiados en su momento.
func (uc *FieldUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteByIDAndUser(ctx, id, userID)
}

func toFieldResponse(f *entity.Field) *dto.FieldResponse {
	if f == nil {
		return nil
	}
	return &dto.FieldResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		Nome:        f.Name,
		AreaHa:      f.AreaHa,
		Cultura:     f.Crop,
		Localizacao: f.Location,
		CreatedAt:   f.CreatedAt,
	}
}
