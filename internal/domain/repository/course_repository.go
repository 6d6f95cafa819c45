package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// CourseFilter filtros para listados de cursos.
type CourseFilter struct {
	Activo    *bool
	Modalidad string
}

// CourseRepository puerto de persistencia para Course.
type CourseRepository interface {
	Create(ctx context.Context, c *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	// GetByIDForUpdate bloquea la fila del curso (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción: es la guarda de admisión
	// que evita sobrepasar el cupo bajo inscripciones concurrentes.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Course, error)
	Update(ctx context.Context, c *entity.Course) error
	// List incluye el conteo de inscritos por curso.
	List(ctx context.Context, f CourseFilter) ([]*entity.Course, error)
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository puerto de persistencia para Enrollment.
type EnrollmentRepository interface {
	// Create inserta la inscripción; la unicidad (usuario, curso) la garantiza
	// el índice único y se informa como domain.ErrAlreadyEnrolled.
	Create(ctx context.Context, e *entity.Enrollment) error
	CountByCourse(ctx context.Context, cursoID string) (int, error)
	ListByCourse(ctx context.Context, cursoID string) ([]*entity.Enrollment, error)
	CountByUser(ctx context.Context, usuarioID string) (int, error)
}
