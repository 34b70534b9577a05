package entity

import "time"

// User representa o principal autenticado. Possui no máximo uma Farmacia (1:1).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano no domínio após persistir
	CreatedAt    time.Time
}
