package entity

import "time"

// Harvest representa una colheita registrada sobre un Field.
//
// FieldName, AreaHa y Productivity se copian/calculan al momento de crear la
// colheita y quedan congelados: ediciones posteriores del Field no los
// recalculan.
type Harvest struct {
	ID           string
	UserID       string
	FieldID      string
	FieldName    string
	AreaHa       float64
	Crop         string
	Quantity     float64 // sacas cosechadas
	Productivity float64 // sacas/ha, redondeado a 2 decimales
	HarvestDate  time.Time
	Notes        string
	CreatedAt    time.Time
}
