package dto

import "time"

// CreateHarvestRequest entrada para registrar una colheita sobre un talhão propio.
type CreateHarvestRequest struct {
	FieldID         string    `json:"field_id" validate:"required"`
	Cultura         string    `json:"cultura"`
	QuantidadeSacas float64   `json:"quantidade_sacas" validate:"required,gt=0"`
	DataColheita    time.Time `json:"data_colheita" validate:"required"`
	Observacoes     string    `json:"observacoes" validate:"omitempty,max=500"`
}

// HarvestResponse salida de una colheita. Produtividade (sacas/ha) queda
// congelada al valor calculado en la creación.
type HarvestResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FieldID         string    `json:"field_id"`
	FieldName       string    `json:"field_name"`
	AreaHa          float64   `json:"area_ha"`
	Cultura         string    `json:"cultura"`
	QuantidadeSacas float64   `json:"quantidade_sacas"`
	Produtividade   float64   `json:"produtividade"`
	DataColheita    time.Time `json:"data_colheita"`
	Observacoes     string    `json:"observacoes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
