package entity

import "time"

// Estados conocidos de una deuda. El endpoint de actualización acepta
// cualquier string no vacío; estos son los valores que usa el frontend.
const (
	DebtStatusPending = "pendente"
	DebtStatusPaid    = "pago"
)

// Debt representa una dívida con un acreedor (banco, cooperativa, proveedor).
type Debt struct {
	ID          string
	UserID      string
	Amount      float64
	Creditor    string
	DueDate     time.Time // vencimento
	Crop        string
	Status      string // pendente | pago (abierto)
	Description string
	CreatedAt   time.Time
}
