package entity

import "time"

// User usuario de la aplicación (solo autenticación; el dominio analítico es read-only).
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"nom"`
	PharmacyID   string    `db:"pharmacie_id"`
	CreatedAt    time.Time `db:"created_at"`
}
