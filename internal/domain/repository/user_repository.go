package repository

import (
	"context"

	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios (solo login).
type UserRepository interface {
	// GetByEmail devuelve el usuario con ese email, o nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
