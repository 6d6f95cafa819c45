package dto

import "time"

// CreateBusinessRequest alta de negocio. UsuarioID solo lo respeta el staff;
// para clientes el dueño es siempre el usuario autenticado.
type CreateBusinessRequest struct {
	NombreNegocio string `json:"nombreNegocio" validate:"required,min=2,max=200"`
	RFC           string `json:"rfc" validate:"omitempty,max=13"`
	Descripcion   string `json:"descripcion"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono" validate:"omitempty,max=20"`
	CategoriaID   string `json:"categoriaId" validate:"required"`
	UsuarioID     string `json:"usuarioId"`
}

// UpdateBusinessRequest actualización parcial de negocio.
type UpdateBusinessRequest struct {
	NombreNegocio *string `json:"nombreNegocio" validate:"omitempty,min=2,max=200"`
	RFC           *string `json:"rfc" validate:"omitempty,max=13"`
	Descripcion   *string `json:"descripcion"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=20"`
	CategoriaID   *string `json:"categoriaId"`
	Activo        *bool   `json:"activo"`
}

// BusinessResponse negocio con su categoría resuelta.
type BusinessResponse struct {
	ID            string            `json:"id"`
	UsuarioID     string            `json:"usuarioId"`
	CategoriaID   string            `json:"categoriaId"`
	NombreNegocio string            `json:"nombreNegocio"`
	RFC           string            `json:"rfc,omitempty"`
	Descripcion   string            `json:"descripcion,omitempty"`
	Direccion     string            `json:"direccion,omitempty"`
	Telefono      string            `json:"telefono,omitempty"`
	Activo        bool              `json:"activo"`
	FechaRegistro time.Time         `json:"fechaRegistro"`
	Categoria     *CategoryResponse `json:"categoria,omitempty"`
}

// CreateCategoryRequest alta de categoría de negocio.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion string `json:"descripcion"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// CategoryResponse categoría de negocio.
type CategoryResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}
