package dto

// UpdateProfileRequest actualización del propio perfil. Campos nil se conservan.
type UpdateProfileRequest struct {
	Nombre        *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Apellido      *string `json:"apellido" validate:"omitempty,min=2,max=100"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=20"`
	Password      *string `json:"password" validate:"omitempty,min=6"`
	FotoPerfilURL *string `json:"fotoPerfilUrl"`
}

// AdminUpdateUserRequest edición administrativa: puede cambiar rol y activo.
type AdminUpdateUserRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
	Rol      *string `json:"rol"`
	Activo   *bool   `json:"activo"`
}
