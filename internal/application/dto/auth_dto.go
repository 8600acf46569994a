package dto

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión del administrador.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
