package dto

import "time"

// AnswerInput respuesta enviada por el postulante: (pregunta, texto).
type AnswerInput struct {
	PreguntaID string `json:"preguntaId" validate:"required"`
	Respuesta  string `json:"respuesta"`
}

// CreateApplicationRequest alta de postulación con sus respuestas iniciales.
type CreateApplicationRequest struct {
	NegocioID  string        `json:"negocioId" validate:"required"`
	ProgramaID string        `json:"programaId" validate:"required"`
	Respuestas []AnswerInput `json:"respuestas" validate:"dive"`
}

// UpdateAnswersRequest reemplazo completo del conjunto de respuestas.
type UpdateAnswersRequest struct {
	Respuestas []AnswerInput `json:"respuestas" validate:"required,dive"`
}

// SetApplicationStateRequest cambio de estado por el staff.
type SetApplicationStateRequest struct {
	Estado     string `json:"estado" validate:"required"`
	NotasAdmin string `json:"notasAdmin"`
}

// AnswerResponse respuesta con su pregunta resuelta.
type AnswerResponse struct {
	ID         string            `json:"id"`
	PreguntaID string            `json:"preguntaId"`
	Respuesta  string            `json:"respuesta"`
	Pregunta   *QuestionResponse `json:"pregunta,omitempty"`
}

// ApplicationResponse postulación con respuestas ordenadas por la pregunta.
type ApplicationResponse struct {
	ID               string           `json:"id"`
	NegocioID        string           `json:"negocioId"`
	ProgramaID       string           `json:"programaId"`
	UsuarioID        string           `json:"usuarioId"`
	Estado           string           `json:"estado"`
	NotasAdmin       string           `json:"notasAdmin,omitempty"`
	FechaPostulacion time.Time        `json:"fechaPostulacion"`
	Respuestas       []AnswerResponse `json:"respuestas"`
}

// CreateWorkerRequest alta de trabajador JCF ligado a una postulación.
type CreateWorkerRequest struct {
	PostulacionID string `json:"postulacionId" validate:"required"`
	Nombre        string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido      string `json:"apellido" validate:"required,min=2,max=100"`
	CURP          string `json:"curp" validate:"omitempty,len=18"`
}

// UpdateWorkerRequest actualización parcial de trabajador.
type UpdateWorkerRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2,max=100"`
	CURP     *string `json:"curp" validate:"omitempty,len=18"`
	Activo   *bool   `json:"activo"`
}

// WorkerResponse trabajador JCF.
type WorkerResponse struct {
	ID            string    `json:"id"`
	PostulacionID string    `json:"postulacionId"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	CURP          string    `json:"curp,omitempty"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}
