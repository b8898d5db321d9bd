package entity

import "time"

// Field representa un talhão (parcela de tierra) del productor.
type Field struct {
	ID        string
	UserID    string
	Name      string
	AreaHa    float64 // hectáreas, siempre > 0
	Crop      string
	Location  string // opcional
	CreatedAt time.Time
}
