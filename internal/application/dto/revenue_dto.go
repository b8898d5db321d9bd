package dto

import "time"

// CreateRevenueRequest entrada para registrar una receita.
type CreateRevenueRequest struct {
	Valor     float64   `json:"valor" validate:"required,gt=0"`
	Cultura   string    `json:"cultura"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data" validate:"required"`
	Descricao string    `json:"descricao" validate:"omitempty,max=500"`
}

// RevenueResponse salida de una receita.
type RevenueResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Valor     float64   `json:"valor"`
	Cultura   string    `json:"cultura"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
