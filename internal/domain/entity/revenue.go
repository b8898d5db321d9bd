package entity

import "time"

// Revenue representa una receita (ingreso) por venta de producción.
type Revenue struct {
	ID          string
	UserID      string
	Amount      float64
	Crop        string
	Kind        string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
