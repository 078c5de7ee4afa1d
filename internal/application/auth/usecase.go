// Package auth caso de uso de autenticación: login con bcrypt + JWT.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/internal/domain/repository"
	"github.com/phardev/pharmanalyse-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación. La API es de solo lectura analítica:
// no hay registro, los usuarios se aprovisionan con el seed o aguas arriba.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el JWT y devuelve token + usuario.
// Email desconocido y password incorrecta devuelven el mismo error: la
// respuesta no debe revelar si la cuenta existe.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.PharmacyID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Nom:         u.Name,
		PharmacieID: u.PharmacyID,
	}
}
