package dto

import "time"

// CreateCourseRequest alta de curso. CupoMaximo nil = sin límite de cupo.
type CreateCourseRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=2,max=200"`
	Descripcion string `json:"descripcion"`
	Modalidad   string `json:"modalidad" validate:"omitempty,oneof=presencial virtual mixta"`
	CupoMaximo  *int   `json:"cupoMaximo" validate:"omitempty,min=1"`
}

// UpdateCourseRequest actualización parcial de curso.
type UpdateCourseRequest struct {
	Titulo      *string `json:"titulo" validate:"omitempty,min=2,max=200"`
	Descripcion *string `json:"descripcion"`
	Modalidad   *string `json:"modalidad" validate:"omitempty,oneof=presencial virtual mixta"`
	CupoMaximo  *int    `json:"cupoMaximo" validate:"omitempty,min=1"`
	Activo      *bool   `json:"activo"`
}

// CourseResponse curso con el número de inscritos.
type CourseResponse struct {
	ID             string    `json:"id"`
	Titulo         string    `json:"titulo"`
	Descripcion    string    `json:"descripcion,omitempty"`
	Modalidad      string    `json:"modalidad,omitempty"`
	CupoMaximo     *int      `json:"cupoMaximo"`
	Activo         bool      `json:"activo"`
	CreadoPor      string    `json:"creadoPor"`
	FechaCreacion  time.Time `json:"fechaCreacion"`
	InscritosCount int       `json:"inscritosCount"`
}

// EnrollRequest inscripción al curso; el negocio es opcional.
type EnrollRequest struct {
	NegocioID *string `json:"negocioId"`
}

// EnrollmentResponse inscripción persistida.
type EnrollmentResponse struct {
	ID               string    `json:"id"`
	CursoID          string    `json:"cursoId"`
	UsuarioID        string    `json:"usuarioId"`
	NegocioID        *string   `json:"negocioId,omitempty"`
	Estado           string    `json:"estado,omitempty"`
	FechaInscripcion time.Time `json:"fechaInscripcion"`
}
