package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*CourseRepo)(nil)

const courseColumns = `id, titulo, descripcion, modalidad, cupo_maximo, activo, creado_por, fecha_creacion`

// CourseRepo implementación del puerto CourseRepository sobre PostgreSQL.
type CourseRepo struct {
	db Querier
}

// NewCourseRepository construye el adaptador de persistencia para cursos.
func NewCourseRepository(db Querier) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create persiste un nuevo curso.
func (r *CourseRepo) Create(ctx context.Context, c *entity.Course) error {
	query := `
		INSERT INTO cursos (id, titulo, descripcion, modalidad, cupo_maximo, activo, creado_por, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Titulo, c.Descripcion, c.Modalidad, c.CupoMaximo, c.Activo, c.CreadoPor, c.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert curso: %w", err)
	}
	return nil
}

// GetByID obtiene un curso por ID con su conteo de inscritos. (nil, nil) si no existe.
func (r *CourseRepo) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	query := `
		SELECT c.id, c.titulo, c.descripcion, c.modalidad, c.cupo_maximo, c.activo, c.creado_por, c.fecha_creacion,
		       (SELECT COUNT(*) FROM inscripciones_curso i WHERE i.curso_id = c.id)
		FROM cursos c WHERE c.id = $1`
	var c entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Titulo, &c.Descripcion, &c.Modalidad, &c.CupoMaximo, &c.Activo,
		&c.CreadoPor, &c.FechaCreacion, &c.InscritosCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get curso: %w", err)
	}
	return &c, nil
}

// GetByIDForUpdate bloquea la fila del curso dentro de la transacción actual.
// Es la guarda de admisión: mientras el lock esté tomado, ninguna otra
// inscripción al mismo curso puede contar cupo.
func (r *CourseRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM cursos WHERE id = $1 FOR UPDATE`
	var c entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Titulo, &c.Descripcion, &c.Modalidad, &c.CupoMaximo, &c.Activo, &c.CreadoPor, &c.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock curso: %w", err)
	}
	return &c, nil
}

// Update actualiza un curso.
func (r *CourseRepo) Update(ctx context.Context, c *entity.Course) error {
	query := `
		UPDATE cursos
		SET titulo = $2, descripcion = $3, modalidad = $4, cupo_maximo = $5, activo = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, c.ID, c.Titulo, c.Descripcion, c.Modalidad, c.CupoMaximo, c.Activo)
	if err != nil {
		return fmt.Errorf("update curso: %w", err)
	}
	return nil
}

// List lista cursos con su conteo de inscritos, más recientes primero.
func (r *CourseRepo) List(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, error) {
	query := `
		SELECT c.id, c.titulo, c.descripcion, c.modalidad, c.cupo_maximo, c.activo, c.creado_por, c.fecha_creacion,
		       COUNT(i.id)
		FROM cursos c
		LEFT JOIN inscripciones_curso i ON i.curso_id = c.id
		WHERE 1=1`
	args := []any{}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND c.activo = $%d", len(args))
	}
	if f.Modalidad != "" {
		args = append(args, f.Modalidad)
		query += fmt.Sprintf(" AND c.modalidad = $%d", len(args))
	}
	query += " GROUP BY c.id ORDER BY c.fecha_creacion DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cursos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Course
	for rows.Next() {
		var c entity.Course
		if err := rows.Scan(&c.ID, &c.Titulo, &c.Descripcion, &c.Modalidad, &c.CupoMaximo,
			&c.Activo, &c.CreadoPor, &c.FechaCreacion, &c.InscritosCount); err != nil {
			return nil, fmt.Errorf("scan curso: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un curso por ID.
func (r *CourseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cursos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete curso: %w", err)
	}
	return nil
}

var _ repository.EnrollmentRepository = (*EnrollmentRepo)(nil)

// EnrollmentRepo implementación del puerto EnrollmentRepository sobre PostgreSQL.
type EnrollmentRepo struct {
	db Querier
}

// NewEnrollmentRepository construye el adaptador de persistencia para inscripciones.
func NewEnrollmentRepository(db Querier) *EnrollmentRepo {
	return &EnrollmentRepo{db: db}
}

// Create inserta la inscripción. El índice único (usuario_id, curso_id) se
// informa como domain.ErrAlreadyEnrolled.
func (r *EnrollmentRepo) Create(ctx context.Context, e *entity.Enrollment) error {
	query := `
		INSERT INTO inscripciones_curso (id, curso_id, usuario_id, negocio_id, estado, fecha_inscripcion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, e.ID, e.CursoID, e.UsuarioID, e.NegocioID, e.Estado, e.FechaInscripcion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("insert inscripción: %w", err)
	}
	return nil
}

// CountByCourse cuenta las inscripciones del curso.
func (r *EnrollmentRepo) CountByCourse(ctx context.Context, cursoID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inscripciones_curso WHERE curso_id = $1`, cursoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inscripciones: %w", err)
	}
	return n, nil
}

// ListByCourse devuelve los inscritos del curso, más recientes primero.
func (r *EnrollmentRepo) ListByCourse(ctx context.Context, cursoID string) ([]*entity.Enrollment, error) {
	query := `
		SELECT id, curso_id, usuario_id, negocio_id, estado, fecha_inscripcion
		FROM inscripciones_curso WHERE curso_id = $1 ORDER BY fecha_inscripcion DESC`
	rows, err := r.db.Query(ctx, query, cursoID)
	if err != nil {
		return nil, fmt.Errorf("list inscritos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Enrollment
	for rows.Next() {
		var e entity.Enrollment
		if err := rows.Scan(&e.ID, &e.CursoID, &e.UsuarioID, &e.NegocioID, &e.Estado, &e.FechaInscripcion); err != nil {
			return nil, fmt.Errorf("scan inscripción: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByUser cuenta las inscripciones del usuario (dashboard del cliente).
func (r *EnrollmentRepo) CountByUser(ctx context.Context, usuarioID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inscripciones_curso WHERE usuario_id = $1`, usuarioID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inscripciones usuario: %w", err)
	}
	return n, nil
}
