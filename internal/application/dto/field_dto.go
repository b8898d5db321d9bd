package dto

import "time"

// CreateFieldRequest entrada para registrar un talhão.
// AreaHa debe ser > 0: la productividad de las colheitas se deriva dividiendo por ella.
type CreateFieldRequest struct {
	Nome        string  `json:"nome" validate:"required,min=1,max=200"`
	AreaHa      float64 `json:"area_ha" validate:"required,gt=0"`
	Cultura     string  `json:"cultura"`
	Localizacao string  `json:"localizacao" validate:"omitempty,max=300"`
}

// FieldResponse salida de un talhão.
type FieldResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Nome        string    `json:"nome"`
	AreaHa      float64   `json:"area_ha"`
	Cultura     string    `json:"cultura"`
	Localizacao string    `json:"localizacao,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
