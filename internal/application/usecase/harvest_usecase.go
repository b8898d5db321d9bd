package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// HarvestUseCase casos de uso para colheitas. La creación resuelve primero el
// talhão por id y dueño, y congela nombre, área y productividad en el registro.
type HarvestUseCase struct {
	harvestRepo repository.HarvestRepository
	fieldRepo   repository.FieldRepository
}

// NewHarvestUseCase construye el caso de uso.
func NewHarvestUseCase(harvestRepo repository.HarvestRepository, fieldRepo repository.FieldRepository) *HarvestUseCase {
	return &HarvestUseCase{harvestRepo: harvestRepo, fieldRepo: fieldRepo}
}

// Create registra una colheita sobre un talhão propio.
//
// Devuelve domain.ErrNotFound si el talhão no existe o pertenece a otro
// usuario. Produtividade = quantidade_sacas / area_ha, redondeada a 2
// decimales y almacenada de forma inmutable: ediciones posteriores del talhão
// no recalculan colheitas ya guardadas.
func (uc *HarvestUseCase) Create(ctx context.Context, userID string, in dto.CreateHarvestRequest) (*dto.HarvestResponse, error) {
	field, err := uc.fieldRepo.GetByIDAndUser(ctx, in.FieldID, userID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, domain.ErrNotFound
	}

	harvest := &entity.Harvest{
		ID:           uuid.New().String(),
		UserID:       userID,
		FieldID:      field.ID,
		FieldName:    field.Name,
		AreaHa:       field.AreaHa,
		Crop:         in.Cultura,
		Quantity:     in.QuantidadeSacas,
		Productivity: round2(in.QuantidadeSacas / field.AreaHa),
		HarvestDate:  in.DataColheita,
		Notes:        in.Observacoes,
		CreatedAt:    time.Now(),
	}
	if err := uc.harvestRepo.Create(ctx, harvest); err != nil {
		return nil, err
	}
	return toHarvestResponse(harvest), nil
}

// List devuelve las colheitas del usuario.
func (uc *HarvestUseCase) List(ctx context.Context, userID string) ([]dto.HarvestResponse, error) {
	list, err := uc.harvestRepo.ListByUser(ctx, userID, listFetchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HarvestResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHarvestResponse(h))
	}
	return items, nil
}

// Delete elimina una colheita propia.
func (uc *HarvestUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.harvestRepo.DeleteByIDAndUser(ctx, id, userID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toHarvestResponse(h *entity.Harvest) *dto.HarvestResponse {
	if h == nil {
		return nil
	}
	return &dto.HarvestResponse{
		ID:              h.ID,
		UserID:          h.UserID,
		FieldID:         h.FieldID,
		FieldName:       h.FieldName,
		AreaHa:          h.AreaHa,
		Cultura:         h.Crop,
		QuantidadeSacas: h.Quantity,
		Produtividade:   h.Productivity,
		DataColheita:    h.HarvestDate,
		Observacoes:     h.Notes,
		CreatedAt:       h.CreatedAt,
	}
}
