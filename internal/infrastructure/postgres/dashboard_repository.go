package postgres

import (
	"context"
	"fmt"

	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para el dashboard.
type DashboardRepo struct {
	db Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(db Querier) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

// CountActiveBusinesses total de negocios activos.
func (r *DashboardRepo) CountActiveBusinesses(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM negocios WHERE activo = true`)
}

// CountActiveClients total de usuarios activos con rol cliente.
func (r *DashboardRepo) CountActiveClients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM usuarios WHERE activo = true AND rol = 'cliente'`)
}

// CountActivePrograms total de programas activos.
func (r *DashboardRepo) CountActivePrograms(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM programas WHERE activo = true`)
}

// CountApplications total de postulaciones; estado vacío cuenta todas.
func (r *DashboardRepo) CountApplications(ctx context.Context, estado string) (int, error) {
	if estado == "" {
		return r.count(ctx, `SELECT COUNT(*) FROM postulaciones`)
	}
	return r.count(ctx, `SELECT COUNT(*) FROM postulaciones WHERE estado = $1`, estado)
}

// CountActiveCourses total de cursos activos.
func (r *DashboardRepo) CountActiveCourses(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM cursos WHERE activo = true`)
}

// CountActiveWorkers total de trabajadores JCF activos.
func (r *DashboardRepo) CountActiveWorkers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM trabajadores_jcf WHERE activo = true`)
}

// CountActiveAnnouncements total de avisos activos.
func (r *DashboardRepo) CountActiveAnnouncements(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM avisos WHERE activo = true`)
}

// CountBusinessesByOwner negocios activos de un usuario.
func (r *DashboardRepo) CountBusinessesByOwner(ctx context.Context, usuarioID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM negocios WHERE activo = true AND usuario_id = $1`, usuarioID)
}

// CountApplicationsByUser postulaciones de un usuario; estado vacío cuenta todas.
func (r *DashboardRepo) CountApplicationsByUser(ctx context.Context, usuarioID, estado string) (int, error) {
	if estado == "" {
		return r.count(ctx, `SELECT COUNT(*) FROM postulaciones WHERE usuario_id = $1`, usuarioID)
	}
	return r.count(ctx, `SELECT COUNT(*) FROM postulaciones WHERE usuario_id = $1 AND estado = $2`, usuarioID, estado)
}

// CountEnrollmentsByUser inscripciones de un usuario.
func (r *DashboardRepo) CountEnrollmentsByUser(ctx context.Context, usuarioID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inscripciones_curso WHERE usuario_id = $1`, usuarioID)
}

// BusinessesByCategory negocios activos agrupados por categoría. Los negocios
// sin categoría se agrupan bajo "Sin categoría".
func (r *DashboardRepo) BusinessesByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	query := `
		SELECT COALESCE(c.nombre, 'Sin categoría'), COUNT(n.id)
		FROM negocios n
		LEFT JOIN categorias_negocio c ON c.id = n.categoria_id
		WHERE n.activo = true
		GROUP BY c.nombre
		ORDER BY COUNT(n.id) DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("negocios por categoría: %w", err)
	}
	defer rows.Close()

	var out []repository.CategoryCount
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Categoria, &c.Total); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ApplicationsByState postulaciones agrupadas por estado.
func (r *DashboardRepo) ApplicationsByState(ctx context.Context) ([]repository.StateCount, error) {
	query := `SELECT estado, COUNT(*) FROM postulaciones GROUP BY estado ORDER BY COUNT(*) DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postulaciones por estado: %w", err)
	}
	defer rows.Close()

	var out []repository.StateCount
	for rows.Next() {
		var s repository.StateCount
		if err := rows.Scan(&s.Estado, &s.Total); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ApplicationsByProgram postulaciones agrupadas por programa.
func (r *DashboardRepo) ApplicationsByProgram(ctx context.Context) ([]repository.ProgramCount, error) {
	query := `
		SELECT p.nombre, COUNT(po.id)
		FROM postulaciones po
		JOIN programas p ON p.id = po.programa_id
		GROUP BY p.nombre
		ORDER BY COUNT(po.id) DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postulaciones por programa: %w", err)
	}
	defer rows.Close()

	var out []repository.ProgramCount
	for rows.Next() {
		var p repository.ProgramCount
		if err := rows.Scan(&p.Programa, &p.Total); err != nil {
			return nil, fmt.Errorf("scan programa: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopCourses cursos activos con más inscritos.
func (r *DashboardRepo) TopCourses(ctx context.Context, limit int) ([]repository.CourseCount, error) {
	query := `
		SELECT c.id, c.titulo, c.modalidad, COUNT(i.id), c.cupo_maximo
		FROM cursos c
		LEFT JOIN inscripciones_curso i ON i.curso_id = c.id
		WHERE c.activo = true
		GROUP BY c.id
		ORDER BY COUNT(i.id) DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top cursos: %w", err)
	}
	defer rows.Close()

	var out []repository.CourseCount
	for rows.Next() {
		var c repository.CourseCount
		if err := rows.Scan(&c.ID, &c.Titulo, &c.Modalidad, &c.Inscritos, &c.CupoMaximo); err != nil {
			return nil, fmt.Errorf("scan curso: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
