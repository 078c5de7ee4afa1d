package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrInvalidCredentials = errors.New("identifiants invalides")
	ErrInvalidInput       = errors.New("paramètres invalides")
	ErrUnauthorized       = errors.New("non autorisé")
)
