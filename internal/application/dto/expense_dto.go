package dto

import "time"

// CreateExpenseRequest entrada para registrar una despesa.
// Los nombres de campo siguen el contrato del app móvil (portugués).
type CreateExpenseRequest struct {
	Valor     float64   `json:"valor" validate:"required,gt=0"`
	Categoria string    `json:"categoria" validate:"required"`
	Cultura   string    `json:"cultura"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data" validate:"required"`
	Descricao string    `json:"descricao" validate:"omitempty,max=500"`
}

// ExpenseResponse salida de una despesa.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Valor     float64   `json:"valor"`
	Categoria string    `json:"categoria"`
	Cultura   string    `json:"cultura"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
