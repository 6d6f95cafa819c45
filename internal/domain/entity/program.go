package entity

import "time"

// Program (programa de apoyo) al que un negocio puede postular.
type Program struct {
	ID            string
	Nombre        string
	Descripcion   string
	CategoriaID   string
	Activo        bool
	CreadoPor     string
	FechaCreacion time.Time
}

// Question (pregunta de formulario) reutilizable en varios programas.
// Orden es el orden global de catálogo; el orden por programa vive en ProgramQuestion.
type Question struct {
	ID            string
	Texto         string
	TipoRespuesta string // texto, numero, opcion_multiple...
	Categoria     string
	Orden         int
	Activa        bool
	CreadoPor     string
	FechaCreacion time.Time
}

// ProgramQuestion asigna una pregunta a un programa. Es una entidad propia, no
// un enlace plano: orden y activa son del par (programa, pregunta), no de la
// pregunta. No hay unicidad sobre (programa, pregunta); la multiplicidad se
// conserva y Unassign borra todas las filas coincidentes.
type ProgramQuestion struct {
	ID         string
	ProgramaID string
	PreguntaID string
	Orden      int
	Activa     bool

	// Pregunta se llena en consultas con join; nil en escrituras.
	Pregunta *Question
}
