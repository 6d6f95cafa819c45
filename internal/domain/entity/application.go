package entity

import "time"

// Estados convencionales de una postulación. El campo Estado es un string
// abierto: un admin puede fijar cualquier etiqueta y no hay tabla de
// transiciones (laxitud intencional, heredada del comportamiento original).
const (
	ApplicationPendiente = "pendiente"
	ApplicationAprobada  = "aprobada"
	ApplicationRechazada = "rechazada"
)

// Application (postulación) de un negocio a un programa. El propietario es
// UsuarioID; solo él (si es cliente) o el staff pueden leerla o mutarla, y
// solo el staff puede cambiar Estado.
type Application struct {
	ID               string
	NegocioID        string
	ProgramaID       string
	UsuarioID        string
	Estado           string
	NotasAdmin       string
	FechaPostulacion time.Time

	// Respuestas se llena en lecturas, ordenadas por el orden de la pregunta.
	Respuestas []*Answer
}

// Answer (respuesta) capturada para una pregunta dentro de una postulación.
// El conjunto se reemplaza completo en actualizaciones (delete + insert en
// una sola transacción).
type Answer struct {
	ID            string
	PostulacionID string
	PreguntaID    string
	Respuesta     string

	// Pregunta se llena en consultas con join.
	Pregunta *Question
}

// Worker (trabajador JCF) colocado en un programa como resultado de una
// postulación aprobada.
type Worker struct {
	ID            string
	PostulacionID string
	Nombre        string
	Apellido      string
	CURP          string
	Activo        bool
	FechaRegistro time.Time
}
