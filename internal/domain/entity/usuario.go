package entity

import "time"

// Usuario operador de la aplicación administrativa.
type Usuario struct {
	ID           string // uuid
	Email        string
	PasswordHash string // bcrypt
	Nombre       string
	Estado       string // ACTIVO | INACTIVO
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
