package dto

import "time"

// RegisterRequest alta pública de usuario. El rol siempre queda en "cliente";
// cuentas de staff solo se crean vía edición de admin.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido string `json:"apellido" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin campos sensibles (nunca incluye el hash).
type UserResponse struct {
	ID            string     `json:"id"`
	Nombre        string     `json:"nombre"`
	Apellido      string     `json:"apellido"`
	Email         string     `json:"email"`
	Telefono      string     `json:"telefono,omitempty"`
	Rol           string     `json:"rol"`
	Activo        bool       `json:"activo"`
	FotoPerfilURL string     `json:"fotoPerfilUrl,omitempty"`
	FechaRegistro time.Time  `json:"fechaRegistro"`
	UltimaSesion  *time.Time `json:"ultimaSesion,omitempty"`
}

// AuthResponse usuario + token emitido (registro y login).
type AuthResponse struct {
	Usuario UserResponse `json:"usuario"`
	Token   string       `json:"token"`
}
