package dto

import "time"

// CreateDebtRequest entrada para registrar una dívida.
// Status por defecto "pendente" si viene vacío.
type CreateDebtRequest struct {
	Valor      float64   `json:"valor" validate:"required,gt=0"`
	Credor     string    `json:"credor" validate:"required"`
	Vencimento time.Time `json:"vencimento" validate:"required"`
	Cultura    string    `json:"cultura"`
	Status     string    `json:"status"`
	Descricao  string    `json:"descricao" validate:"omitempty,max=500"`
}

// DebtResponse salida de una dívida.
type DebtResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Valor      float64   `json:"valor"`
	Credor     string    `json:"credor"`
	Vencimento time.Time `json:"vencimento"`
	Cultura    string    `json:"cultura"`
	Status     string    `json:"status"`
	Descricao  string    `json:"descricao,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
