package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ usecase.ApplicationTxRunner = (*TxRunner)(nil)
var _ usecase.EnrollmentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunApplication inicia una transacción, ejecuta fn con repos de postulaciones
// y respuestas atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunApplication(ctx context.Context, fn func(
	appRepo repository.ApplicationRepository,
	answerRepo repository.AnswerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appRepo := NewApplicationRepository(tx)
	answerRepo := NewAnswerRepository(tx)

	if err := fn(appRepo, answerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunEnrollment inicia una transacción con repos de cursos e inscripciones.
// El callback toma el lock del curso con GetByIDForUpdate; el lock vive hasta
// el Commit, así que el conteo de cupo y el insert son atómicos.
func (r *TxRunner) RunEnrollment(ctx context.Context, fn func(
	courseRepo repository.CourseRepository,
	enrollRepo repository.EnrollmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	courseRepo := NewCourseRepository(tx)
	enrollRepo := NewEnrollmentRepository(tx)

	if err := fn(courseRepo, enrollRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
