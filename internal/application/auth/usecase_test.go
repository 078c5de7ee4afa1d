package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/internal/domain"
	"github.com/phardev/pharmanalyse-api/internal/domain/entity"
	"github.com/phardev/pharmanalyse-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func testUseCase(t *testing.T) *UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"marie@pharmacie.fr": {
			ID:           "u-1",
			Email:        "marie@pharmacie.fr",
			PasswordHash: string(hash),
			Name:         "Marie Dupont",
			PharmacyID:   "ph-1",
		},
	}}
	return NewUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "pharmanalyse"})
}

func TestLoginOK(t *testing.T) {
	uc := testUseCase(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "marie@pharmacie.fr",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, "ph-1", res.User.PharmacieID)

	// El token lleva el usuario y su farmacia.
	userID, pharmacieID, err := jwt.Parse("test-secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "ph-1", pharmacieID)
}

func TestLoginMauvaisPassword(t *testing.T) {
	uc := testUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "marie@pharmacie.fr",
		Password: "autre",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestLoginEmailInconnu(t *testing.T) {
	uc := testUseCase(t)

	// Mismo error que un password incorrecto: no revelar la existencia de la cuenta.
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "inconnu@pharmacie.fr",
		Password: "s3cret",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}
