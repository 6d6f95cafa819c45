package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

var _ repository.ProgramRepository = (*ProgramRepo)(nil)

const programColumns = `id, nombre, descripcion, categoria_id, activo, creado_por, fecha_creacion`

// ProgramRepo implementación del puerto ProgramRepository sobre PostgreSQL.
type ProgramRepo struct {
	db Querier
}

// NewProgramRepository construye el adaptador de persistencia para programas.
func NewProgramRepository(db Querier) *ProgramRepo {
	return &ProgramRepo{db: db}
}

// Create persiste un nuevo programa.
func (r *ProgramRepo) Create(ctx context.Context, p *entity.Program) error {
	query := `
		INSERT INTO programas (id, nombre, descripcion, categoria_id, activo, creado_por, fecha_creacion)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.Activo, p.CreadoPor, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert programa: %w", err)
	}
	return nil
}

// GetByID obtiene un programa por ID. (nil, nil) si no existe.
func (r *ProgramRepo) GetByID(ctx context.Context, id string) (*entity.Program, error) {
	query := `SELECT id, nombre, descripcion, COALESCE(categoria_id, ''), activo, creado_por, fecha_creacion
		FROM programas WHERE id = $1`
	var p entity.Program
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.Activo, &p.CreadoPor, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get programa: %w", err)
	}
	return &p, nil
}

// Update actualiza un programa.
func (r *ProgramRepo) Update(ctx context.Context, p *entity.Program) error {
	query := `
		UPDATE programas
		SET nombre = $2, descripcion = $3, categoria_id = NULLIF($4, ''), activo = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.Activo)
	if err != nil {
		return fmt.Errorf("update programa: %w", err)
	}
	return nil
}

// List lista programas con filtros opcionales, más recientes primero.
func (r *ProgramRepo) List(ctx context.Context, f repository.ProgramFilter) ([]*entity.Program, error) {
	query := `SELECT id, nombre, descripcion, COALESCE(categoria_id, ''), activo, creado_por, fecha_creacion
		FROM programas WHERE 1=1`
	args := []any{}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	if f.CategoriaID != "" {
		args = append(args, f.CategoriaID)
		query += fmt.Sprintf(" AND categoria_id = $%d", len(args))
	}
	query += " ORDER BY fecha_creacion DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list programas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Program
	for rows.Next() {
		var p entity.Program
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.Activo, &p.CreadoPor, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan programa: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un programa por ID.
func (r *ProgramRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM programas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete programa: %w", err)
	}
	return nil
}

// AssignQuestion crea la asignación (programa, pregunta, orden). Sin unicidad:
// asignar dos veces produce dos filas, igual que el comportamiento original.
func (r *ProgramRepo) AssignQuestion(ctx context.Context, pq *entity.ProgramQuestion) error {
	query := `
		INSERT INTO programa_preguntas (id, programa_id, pregunta_id, orden, activa)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, pq.ID, pq.ProgramaID, pq.PreguntaID, pq.Orden, pq.Activa)
	if err != nil {
		return fmt.Errorf("asignar pregunta: %w", err)
	}
	return nil
}

// UnassignQuestion borra todas las asignaciones del par (bulk, no una sola fila).
func (r *ProgramRepo) UnassignQuestion(ctx context.Context, programaID, preguntaID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM programa_preguntas WHERE programa_id = $1 AND pregunta_id = $2`,
		programaID, preguntaID,
	)
	if err != nil {
		return fmt.Errorf("desasignar pregunta: %w", err)
	}
	return nil
}

// ListActiveQuestions devuelve las asignaciones activas con su pregunta,
// ordenadas por orden de asignación ascendente.
func (r *ProgramRepo) ListActiveQuestions(ctx context.Context, programaID string) ([]*entity.ProgramQuestion, error) {
	query := `
		SELECT pp.id, pp.programa_id, pp.pregunta_id, pp.orden, pp.activa,
		       q.id, q.texto, q.tipo_respuesta, q.categoria, q.orden, q.activa, q.creado_por, q.fecha_creacion
		FROM programa_preguntas pp
		JOIN preguntas_formulario q ON q.id = pp.pregunta_id
		WHERE pp.programa_id = $1 AND pp.activa = TRUE
		ORDER BY pp.orden ASC`
	rows, err := r.db.Query(ctx, query, programaID)
	if err != nil {
		return nil, fmt.Errorf("preguntas del programa: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProgramQuestion
	for rows.Next() {
		var pq entity.ProgramQuestion
		var q entity.Question
		if err := rows.Scan(&pq.ID, &pq.ProgramaID, &pq.PreguntaID, &pq.Orden, &pq.Activa,
			&q.ID, &q.Texto, &q.TipoRespuesta, &q.Categoria, &q.Orden, &q.Activa, &q.CreadoPor, &q.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan asignación: %w", err)
		}
		pq.Pregunta = &q
		list = append(list, &pq)
	}
	return list, rows.Err()
}

var _ repository.QuestionRepository = (*QuestionRepo)(nil)

const questionColumns = `id, texto, tipo_respuesta, categoria, orden, activa, creado_por, fecha_creacion`

// QuestionRepo implementación del puerto QuestionRepository sobre PostgreSQL.
type QuestionRepo struct {
	db Querier
}

// NewQuestionRepository construye el adaptador de persistencia para preguntas.
func NewQuestionRepository(db Querier) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create persiste una nueva pregunta.
func (r *QuestionRepo) Create(ctx context.Context, q *entity.Question) error {
	query := `
		INSERT INTO preguntas_formulario (id, texto, tipo_respuesta, categoria, orden, activa, creado_por, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		q.ID, q.Texto, q.TipoRespuesta, q.Categoria, q.Orden, q.Activa, q.CreadoPor, q.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert pregunta: %w", err)
	}
	return nil
}

// GetByID obtiene una pregunta por ID. (nil, nil) si no existe.
func (r *QuestionRepo) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	var q entity.Question
	err := r.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM preguntas_formulario WHERE id = $1`, id).Scan(
		&q.ID, &q.Texto, &q.TipoRespuesta, &q.Categoria, &q.Orden, &q.Activa, &q.CreadoPor, &q.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pregunta: %w", err)
	}
	return &q, nil
}

// Update actualiza una pregunta.
func (r *QuestionRepo) Update(ctx context.Context, q *entity.Question) error {
	query := `
		UPDATE preguntas_formulario
		SET texto = $2, tipo_respuesta = $3, categoria = $4, orden = $5, activa = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, q.ID, q.Texto, q.TipoRespuesta, q.Categoria, q.Orden, q.Activa)
	if err != nil {
		return fmt.Errorf("update pregunta: %w", err)
	}
	return nil
}

// List lista preguntas ordenadas por orden global ascendente.
func (r *QuestionRepo) List(ctx context.Context, f repository.QuestionFilter) ([]*entity.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM preguntas_formulario WHERE 1=1`
	args := []any{}
	if f.Activa != nil {
		args = append(args, *f.Activa)
		query += fmt.Sprintf(" AND activa = $%d", len(args))
	}
	if f.Categoria != "" {
		args = append(args, f.Categoria)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	query += " ORDER BY orden ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list preguntas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.Texto, &q.TipoRespuesta, &q.Categoria, &q.Orden, &q.Activa, &q.CreadoPor, &q.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan pregunta: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete elimina una pregunta por ID.
func (r *QuestionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM preguntas_formulario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pregunta: %w", err)
	}
	return nil
}
