package repository

import "context"

// CategoryCount total de negocios por categoría.
type CategoryCount struct {
	Categoria string `json:"categoria"`
	Total     int    `json:"total"`
}

// StateCount total de postulaciones por estado.
type StateCount struct {
	Estado string `json:"estado"`
	Total  int    `json:"total"`
}

// ProgramCount total de postulaciones por programa.
type ProgramCount struct {
	Programa string `json:"programa"`
	Total    int    `json:"total"`
}

// CourseCount cursos con su número de inscritos (para el ranking).
type CourseCount struct {
	ID         string `json:"id"`
	Titulo     string `json:"titulo"`
	Modalidad  string `json:"modalidad"`
	Inscritos  int    `json:"inscritos"`
	CupoMaximo *int   `json:"cupoMaximo"`
}

// DashboardRepository consultas agregadas read-only para el dashboard.
// Ninguna muta estado ni depende del resultado de otra; el caso de uso las
// lanza en paralelo.
type DashboardRepository interface {
	CountActiveBusinesses(ctx context.Context) (int, error)
	CountActiveClients(ctx context.Context) (int, error)
	CountActivePrograms(ctx context.Context) (int, error)
	// CountApplications cuenta postulaciones por estado; estado vacío = todas.
	CountApplications(ctx context.Context, estado string) (int, error)
	CountActiveCourses(ctx context.Context) (int, error)
	CountActiveWorkers(ctx context.Context) (int, error)
	CountActiveAnnouncements(ctx context.Context) (int, error)

	// Alcance cliente (estadísticas propias).
	CountBusinessesByOwner(ctx context.Context, usuarioID string) (int, error)
	CountApplicationsByUser(ctx context.Context, usuarioID, estado string) (int, error)
	CountEnrollmentsByUser(ctx context.Context, usuarioID string) (int, error)

	BusinessesByCategory(ctx context.Context) ([]CategoryCount, error)
	ApplicationsByState(ctx context.Context) ([]StateCount, error)
	ApplicationsByProgram(ctx context.Context) ([]ProgramCount, error)
	TopCourses(ctx context.Context, limit int) ([]CourseCount, error)
}
