package dto

import "time"

// CreateAnnouncementRequest alta de aviso.
type CreateAnnouncementRequest struct {
	Titulo       string `json:"titulo" validate:"required,min=2,max=200"`
	Contenido    string `json:"contenido" validate:"required"`
	Tipo         string `json:"tipo"`
	Destinatario string `json:"destinatario" validate:"omitempty,oneof=todos clientes colaboradores"`
}

// UpdateAnnouncementRequest actualización parcial de aviso.
type UpdateAnnouncementRequest struct {
	Titulo       *string `json:"titulo" validate:"omitempty,min=2,max=200"`
	Contenido    *string `json:"contenido"`
	Tipo         *string `json:"tipo"`
	Destinatario *string `json:"destinatario" validate:"omitempty,oneof=todos clientes colaboradores"`
	Activo       *bool   `json:"activo"`
}

// AnnouncementResponse aviso publicado.
type AnnouncementResponse struct {
	ID               string    `json:"id"`
	Titulo           string    `json:"titulo"`
	Contenido        string    `json:"contenido"`
	Tipo             string    `json:"tipo,omitempty"`
	Destinatario     string    `json:"destinatario"`
	Activo           bool      `json:"activo"`
	CreadoPor        string    `json:"creadoPor"`
	FechaPublicacion time.Time `json:"fechaPublicacion"`
}

// CreateResourceLinkRequest alta de enlace de recurso.
type CreateResourceLinkRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=2,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
	Categoria   string `json:"categoria"`
	VisiblePara string `json:"visiblePara" validate:"omitempty,oneof=todos clientes colaboradores"`
}

// UpdateResourceLinkRequest actualización parcial de enlace.
type UpdateResourceLinkRequest struct {
	Titulo      *string `json:"titulo" validate:"omitempty,min=2,max=200"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Descripcion *string `json:"descripcion"`
	Tipo        *string `json:"tipo"`
	Categoria   *string `json:"categoria"`
	VisiblePara *string `json:"visiblePara" validate:"omitempty,oneof=todos clientes colaboradores"`
	Activo      *bool   `json:"activo"`
}

// ResourceLinkResponse enlace de recurso.
type ResourceLinkResponse struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	URL           string    `json:"url"`
	Descripcion   string    `json:"descripcion,omitempty"`
	Tipo          string    `json:"tipo,omitempty"`
	Categoria     string    `json:"categoria,omitempty"`
	VisiblePara   string    `json:"visiblePara"`
	Activo        bool      `json:"activo"`
	CreadoPor     string    `json:"creadoPor"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// UpdateContactRequest upsert de la información de contacto (singleton).
type UpdateContactRequest struct {
	Telefono  *string `json:"telefono" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Horario   *string `json:"horario"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
}

// ContactResponse información de contacto de CAPYME.
type ContactResponse struct {
	ID        string `json:"id"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Horario   string `json:"horario,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}
