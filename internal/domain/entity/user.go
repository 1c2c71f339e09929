package entity

import "time"

// User representa al dueño de una farmacia (autenticado por email/contraseña).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
}
