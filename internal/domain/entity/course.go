package entity

import "time"

// Course (curso) con control de cupo. CupoMaximo nil = sin límite.
type Course struct {
	ID            string
	Titulo        string
	Descripcion   string
	Modalidad     string // presencial, virtual, mixta
	CupoMaximo    *int
	Activo        bool
	CreadoPor     string
	FechaCreacion time.Time

	// InscritosCount se llena en listados (COUNT sobre inscripciones).
	InscritosCount int
}

// Enrollment (inscripción) de un usuario en un curso. Única por
// (usuario, curso); el negocio asociado es opcional.
type Enrollment struct {
	ID               string
	CursoID          string
	UsuarioID        string
	NegocioID        *string
	Estado           string
	FechaInscripcion time.Time
}
