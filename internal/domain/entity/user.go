package entity

import "time"

// Tipos de cuenta válidos para User.
const (
	AccountEntrepreneur = "entrepreneur"
	AccountInvestor     = "investor"
)

// IsValidAccountType indica si t es un tipo de cuenta conocido.
func IsValidAccountType(t string) bool {
	return t == AccountEntrepreneur || t == AccountInvestor
}

// User representa una cuenta (emprendedor o inversionista).
type User struct {
	ID           string
	FullName     string
	Email        string // único, guardado en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	AccountType  string // entrepreneur | investor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
