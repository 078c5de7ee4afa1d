package dto

// LoginRequest credenciales de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO usuario autenticado (sin hash).
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Nom         string `json:"nom"`
	PharmacieID string `json:"pharmacie_id"`
}

// LoginResponse token JWT y usuario.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
