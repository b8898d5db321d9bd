package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
)

// DebtUseCase casos de uso CRUD para dívidas, incluida la actualización de status.
type DebtUseCase struct {
	repo repository.DebtRepository
}

// NewDebtUseCase construye el caso de uso.
func NewDebtUseCase(repo repository.DebtRepository) *DebtUseCase {
	return &DebtUseCase{repo: repo}
}

// Create registra una dívida del usuario. Status vacío se normaliza a "pendente".
func (uc *DebtUseCase) Create(ctx context.Context, userID string, in dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.DebtStatusPending
	}
	debt := &entity.Debt{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      in.Valor,
		Creditor:    in.Credor,
		DueDate:     in.Vencimento,
		Crop:        in.Cultura,
		Status:      status,
		Description: in.Descricao,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, debt); err != nil {
		return nil, err
	}
	return ToDebtResponse(debt), nil
}

// List devuelve las dívidas del usuario (todos los status).
func (uc *DebtUseCase) List(ctx context.Context, userID string) ([]dto.DebtResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, listFetchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DebtResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDebtResponse(d))
	}
	return items, nil
}

// UpdateStatus cambia el status de una dívida propia. Se acepta cualquier
// string no vacío; el dominio no impone un enum cerrado.
func (uc *DebtUseCase) UpdateStatus(ctx context.Context, userID, id, status string) error {
	if status == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatusByIDAndUser(ctx, id, userID, status)
}

// Delete elimina una dívida propia.
func (uc *DebtUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.DeleteByIDAndUser(ctx, id, userID)
}

// ToDebtResponse proyecta una dívida al contrato HTTP. Lo usa también el
// dashboard para devolver las pendientes tal cual.
func ToDebtResponse(d *entity.Debt) *dto.DebtResponse {
	if d == nil {
		return nil
	}
	return &dto.DebtResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Valor:      d.Amount,
		Credor:     d.Creditor,
		Vencimento: d.DueDate,
		Cultura:    d.Crop,
		Status:     d.Status,
		Descricao:  d.Description,
		CreatedAt:  d.CreatedAt,
	}
}
