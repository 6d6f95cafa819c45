package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// ProgramFilter filtros para listados de programas.
type ProgramFilter struct {
	Activo      *bool
	CategoriaID string
}

// ProgramRepository puerto de persistencia para Program y su asignación de
// preguntas (ProgramQuestion).
type ProgramRepository interface {
	Create(ctx context.Context, p *entity.Program) error
	GetByID(ctx context.Context, id string) (*entity.Program, error)
	Update(ctx context.Context, p *entity.Program) error
	List(ctx context.Context, f ProgramFilter) ([]*entity.Program, error)
	Delete(ctx context.Context, id string) error

	// AssignQuestion crea la fila de asignación; no hay unicidad sobre
	// (programa, pregunta), asignaciones duplicadas son posibles.
	AssignQuestion(ctx context.Context, pq *entity.ProgramQuestion) error
	// UnassignQuestion borra TODAS las asignaciones del par (bulk).
	UnassignQuestion(ctx context.Context, programaID, preguntaID string) error
	// ListActiveQuestions devuelve las asignaciones activas con su pregunta,
	// ordenadas por orden de asignación ascendente.
	ListActiveQuestions(ctx context.Context, programaID string) ([]*entity.ProgramQuestion, error)
}

// QuestionFilter filtros para listados de preguntas.
type QuestionFilter struct {
	Activa    *bool
	Categoria string
}

// QuestionRepository puerto de persistencia para Question.
type QuestionRepository interface {
	Create(ctx context.Context, q *entity.Question) error
	GetByID(ctx context.Context, id string) (*entity.Question, error)
	Update(ctx context.Context, q *entity.Question) error
	List(ctx context.Context, f QuestionFilter) ([]*entity.Question, error)
	Delete(ctx context.Context, id string) error
}
