package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, negocio_id, programa_id, usuario_id, estado, notas_admin, fecha_postulacion`

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create persiste la postulación. Las respuestas las inserta el AnswerRepo
// dentro de la misma transacción (TxRunner).
func (r *ApplicationRepo) Create(ctx context.Context, a *entity.Application) error {
	query := `
		INSERT INTO postulaciones (id, negocio_id, programa_id, usuario_id, estado, notas_admin, fecha_postulacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.NegocioID, a.ProgramaID, a.UsuarioID, a.Estado, a.NotasAdmin, a.FechaPostulacion,
	)
	if err != nil {
		return fmt.Errorf("insert postulación: %w", err)
	}
	return nil
}

// GetByID carga la postulación con sus respuestas (join a pregunta), ordenadas
// por el orden de la pregunta ascendente. (nil, nil) si no existe.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	var a entity.Application
	err := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM postulaciones WHERE id = $1`, id).Scan(
		&a.ID, &a.NegocioID, &a.ProgramaID, &a.UsuarioID, &a.Estado, &a.NotasAdmin, &a.FechaPostulacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get postulación: %w", err)
	}

	answers, err := NewAnswerRepository(r.db).ListByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Respuestas = answers
	return &a, nil
}

// List lista postulaciones con filtros opcionales, más recientes primero.
// UsuarioID fuerza el alcance de propiedad para clientes.
func (r *ApplicationRepo) List(ctx context.Context, f repository.ApplicationFilter) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM postulaciones WHERE 1=1`
	args := []any{}
	if f.Estado != "" {
		args = append(args, f.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if f.ProgramaID != "" {
		args = append(args, f.ProgramaID)
		query += fmt.Sprintf(" AND programa_id = $%d", len(args))
	}
	if f.NegocioID != "" {
		args = append(args, f.NegocioID)
		query += fmt.Sprintf(" AND negocio_id = $%d", len(args))
	}
	if f.UsuarioID != "" {
		args = append(args, f.UsuarioID)
		query += fmt.Sprintf(" AND usuario_id = $%d", len(args))
	}
	query += " ORDER BY fecha_postulacion DESC"

	return r.queryMany(ctx, query, args...)
}

// Latest devuelve las postulaciones más recientes (dashboard).
func (r *ApplicationRepo) Latest(ctx context.Context, limit int) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM postulaciones ORDER BY fecha_postulacion DESC LIMIT $1`
	return r.queryMany(ctx, query, limit)
}

func (r *ApplicationRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list postulaciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Application
	for rows.Next() {
		var a entity.Application
		if err := rows.Scan(&a.ID, &a.NegocioID, &a.ProgramaID, &a.UsuarioID, &a.Estado, &a.NotasAdmin, &a.FechaPostulacion); err != nil {
			return nil, fmt.Errorf("scan postulación: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SetState sobrescribe estado y notas. Sin tabla de transiciones: cualquier
// valor del staff es válido.
func (r *ApplicationRepo) SetState(ctx context.Context, id, estado, notasAdmin string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE postulaciones SET estado = $2, notas_admin = $3 WHERE id = $1`,
		id, estado, notasAdmin,
	)
	if err != nil {
		return fmt.Errorf("update estado postulación: %w", err)
	}
	return nil
}

// Delete elimina la postulación; las respuestas caen por FK ON DELETE CASCADE.
func (r *ApplicationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM postulaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete postulación: %w", err)
	}
	return nil
}

var _ repository.AnswerRepository = (*AnswerRepo)(nil)

// AnswerRepo implementación del puerto AnswerRepository sobre PostgreSQL.
type AnswerRepo struct {
	db Querier
}

// NewAnswerRepository construye el adaptador de persistencia para respuestas.
func NewAnswerRepository(db Querier) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// BulkInsert inserta el conjunto completo de respuestas.
func (r *AnswerRepo) BulkInsert(ctx context.Context, answers []*entity.Answer) error {
	for _, a := range answers {
		_, err := r.db.Exec(ctx,
			`INSERT INTO respuestas_postulacion (id, postulacion_id, pregunta_id, respuesta) VALUES ($1, $2, $3, $4)`,
			a.ID, a.PostulacionID, a.PreguntaID, a.Respuesta,
		)
		if err != nil {
			return fmt.Errorf("insert respuesta: %w", err)
		}
	}
	return nil
}

// DeleteByApplication borra todas las respuestas de la postulación.
func (r *AnswerRepo) DeleteByApplication(ctx context.Context, postulacionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM respuestas_postulacion WHERE postulacion_id = $1`, postulacionID)
	if err != nil {
		return fmt.Errorf("delete respuestas: %w", err)
	}
	return nil
}

// ListByApplication devuelve las respuestas con su pregunta, ordenadas por el
// orden global de la pregunta ascendente.
func (r *AnswerRepo) ListByApplication(ctx context.Context, postulacionID string) ([]*entity.Answer, error) {
	query := `
		SELECT a.id, a.postulacion_id, a.pregunta_id, a.respuesta,
		       q.id, q.texto, q.tipo_respuesta, q.categoria, q.orden, q.activa, q.creado_por, q.fecha_creacion
		FROM respuestas_postulacion a
		JOIN preguntas_formulario q ON q.id = a.pregunta_id
		WHERE a.postulacion_id = $1
		ORDER BY q.orden ASC`
	rows, err := r.db.Query(ctx, query, postulacionID)
	if err != nil {
		return nil, fmt.Errorf("list respuestas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Answer
	for rows.Next() {
		var a entity.Answer
		var q entity.Question
		if err := rows.Scan(&a.ID, &a.PostulacionID, &a.PreguntaID, &a.Respuesta,
			&q.ID, &q.Texto, &q.TipoRespuesta, &q.Categoria, &q.Orden, &q.Activa, &q.CreadoPor, &q.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan respuesta: %w", err)
		}
		a.Pregunta = &q
		list = append(list, &a)
	}
	return list, rows.Err()
}

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

const workerColumns = `id, postulacion_id, nombre, apellido, curp, activo, fecha_registro`

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	db Querier
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores JCF.
func NewWorkerRepository(db Querier) *WorkerRepo {
	return &WorkerRepo{db: db}
}

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	query := `
		INSERT INTO trabajadores_jcf (id, postulacion_id, nombre, apellido, curp, activo, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, w.ID, w.PostulacionID, w.Nombre, w.Apellido, w.CURP, w.Activo, w.FechaRegistro)
	if err != nil {
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	var w entity.Worker
	err := r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM trabajadores_jcf WHERE id = $1`, id).Scan(
		&w.ID, &w.PostulacionID, &w.Nombre, &w.Apellido, &w.CURP, &w.Activo, &w.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return &w, nil
}

// Update actualiza un trabajador.
func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	query := `UPDATE trabajadores_jcf SET nombre = $2, apellido = $3, curp = $4, activo = $5 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, w.ID, w.Nombre, w.Apellido, w.CURP, w.Activo)
	if err != nil {
		return fmt.Errorf("update trabajador: %w", err)
	}
	return nil
}

// List lista trabajadores con filtros opcionales, más recientes primero.
func (r *WorkerRepo) List(ctx context.Context, f repository.WorkerFilter) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM trabajadores_jcf WHERE 1=1`
	args := []any{}
	if f.PostulacionID != "" {
		args = append(args, f.PostulacionID)
		query += fmt.Sprintf(" AND postulacion_id = $%d", len(args))
	}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	query += " ORDER BY fecha_registro DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.PostulacionID, &w.Nombre, &w.Apellido, &w.CURP, &w.Activo, &w.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina un trabajador por ID.
func (r *WorkerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM trabajadores_jcf WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trabajador: %w", err)
	}
	return nil
}
