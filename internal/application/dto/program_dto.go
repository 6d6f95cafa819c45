package dto

import "time"

// CreateProgramRequest alta de programa de apoyo.
type CreateProgramRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=200"`
	Descripcion string `json:"descripcion"`
	CategoriaID string `json:"categoriaId"`
}

// UpdateProgramRequest actualización parcial de programa.
type UpdateProgramRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=200"`
	Descripcion *string `json:"descripcion"`
	CategoriaID *string `json:"categoriaId"`
	Activo      *bool   `json:"activo"`
}

// ProgramResponse programa con su categoría resuelta.
type ProgramResponse struct {
	ID            string            `json:"id"`
	Nombre        string            `json:"nombre"`
	Descripcion   string            `json:"descripcion,omitempty"`
	CategoriaID   string            `json:"categoriaId,omitempty"`
	Activo        bool              `json:"activo"`
	CreadoPor     string            `json:"creadoPor"`
	FechaCreacion time.Time         `json:"fechaCreacion"`
	Categoria     *CategoryResponse `json:"categoria,omitempty"`
}

// CreateQuestionRequest alta de pregunta de formulario.
type CreateQuestionRequest struct {
	Texto         string `json:"texto" validate:"required,min=3"`
	TipoRespuesta string `json:"tipoRespuesta"`
	Categoria     string `json:"categoria"`
	Orden         int    `json:"orden"`
}

// UpdateQuestionRequest actualización parcial de pregunta.
type UpdateQuestionRequest struct {
	Texto         *string `json:"texto" validate:"omitempty,min=3"`
	TipoRespuesta *string `json:"tipoRespuesta"`
	Categoria     *string `json:"categoria"`
	Orden         *int    `json:"orden"`
	Activa        *bool   `json:"activa"`
}

// QuestionResponse pregunta del catálogo.
type QuestionResponse struct {
	ID            string    `json:"id"`
	Texto         string    `json:"texto"`
	TipoRespuesta string    `json:"tipoRespuesta,omitempty"`
	Categoria     string    `json:"categoria,omitempty"`
	Orden         int       `json:"orden"`
	Activa        bool      `json:"activa"`
	CreadoPor     string    `json:"creadoPor"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// AssignQuestionRequest asignación de una pregunta a un programa.
// Orden por defecto 0 si no se envía.
type AssignQuestionRequest struct {
	PreguntaID string `json:"preguntaId" validate:"required"`
	Orden      int    `json:"orden"`
}

// ProgramQuestionResponse asignación con su pregunta resuelta.
type ProgramQuestionResponse struct {
	ID         string            `json:"id"`
	ProgramaID string            `json:"programaId"`
	PreguntaID string            `json:"preguntaId"`
	Orden      int               `json:"orden"`
	Activa     bool              `json:"activa"`
	Pregunta   *QuestionResponse `json:"pregunta,omitempty"`
}
