package entity

import "time"

// Planes de cuenta disponibles.
const (
	PlanTrial = "trial"
)

// TrialDays duración del período de prueba a partir del registro.
const TrialDays = 14

// User representa un productor registrado en la plataforma.
// Todas las demás entidades cuelgan de un User vía UserID.
type User struct {
	ID           string
	Name         string
	Email        string // único en todo el sistema
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string // opcional
	Plan         string // trial por defecto
	TrialEndDate time.Time
	CreatedAt    time.Time
}
