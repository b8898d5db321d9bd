package entity

import "time"

// Expense representa una despesa (gasto) de la operación agrícola.
type Expense struct {
	ID          string
	UserID      string
	Amount      float64 // valor en R$
	Category    string  // insumos, maquinaria, mano de obra, etc.
	Crop        string  // cultura asociada (soja, milho, ...)
	Kind        string  // tipo libre definido por el usuario
	Date        time.Time
	Description string // opcional
	CreatedAt   time.Time
}
