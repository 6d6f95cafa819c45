package dto

import "github.com/capyme/capyme-api/internal/domain/repository"

// GeneralStatsDTO totales del dashboard administrativo.
type GeneralStatsDTO struct {
	NegociosActivos         int `json:"negociosActivos"`
	ClientesActivos         int `json:"clientesActivos"`
	ProgramasActivos        int `json:"programasActivos"`
	PostulacionesTotal      int `json:"postulacionesTotal"`
	PostulacionesPendientes int `json:"postulacionesPendientes"`
	CursosActivos           int `json:"cursosActivos"`
	TrabajadoresActivos     int `json:"trabajadoresActivos"`
	AvisosActivos           int `json:"avisosActivos"`
}

// ClientStatsDTO totales del propio cliente autenticado.
type ClientStatsDTO struct {
	MisNegocios                int `json:"misNegocios"`
	MisPostulaciones           int `json:"misPostulaciones"`
	MisPostulacionesPendientes int `json:"misPostulacionesPendientes"`
	MisInscripciones           int `json:"misInscripciones"`
}

// ChartsDTO distribuciones para las gráficas del dashboard.
type ChartsDTO struct {
	NegociosPorCategoria     []repository.CategoryCount `json:"negociosPorCategoria"`
	PostulacionesPorEstado   []repository.StateCount    `json:"postulacionesPorEstado"`
	PostulacionesPorPrograma []repository.ProgramCount  `json:"postulacionesPorPrograma"`
}

// RecentActivityDTO últimos registros para el widget de actividad.
type RecentActivityDTO struct {
	Negocios      []*BusinessResponse    `json:"negocios"`
	Postulaciones []*ApplicationResponse `json:"postulaciones"`
}
