package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// ApplicationFilter filtros para listados de postulaciones. UsuarioID fuerza
// el alcance de propiedad para clientes.
type ApplicationFilter struct {
	Estado     string
	ProgramaID string
	NegocioID  string
	UsuarioID  string
}

// ApplicationRepository puerto de persistencia para Application.
type ApplicationRepository interface {
	Create(ctx context.Context, a *entity.Application) error
	// GetByID carga la postulación con sus respuestas ordenadas por el orden
	// de la pregunta. (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	List(ctx context.Context, f ApplicationFilter) ([]*entity.Application, error)
	// SetState sobrescribe estado y notas sin validar transiciones.
	SetState(ctx context.Context, id, estado, notasAdmin string) error
	// Delete elimina la postulación; las respuestas caen por FK ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error
	Latest(ctx context.Context, limit int) ([]*entity.Application, error)
}

// AnswerRepository puerto de persistencia para Answer. Las mutaciones van
// siempre dentro de la transacción del TxRunner junto con la postulación.
type AnswerRepository interface {
	BulkInsert(ctx context.Context, answers []*entity.Answer) error
	DeleteByApplication(ctx context.Context, postulacionID string) error
	ListByApplication(ctx context.Context, postulacionID string) ([]*entity.Answer, error)
}

// WorkerFilter filtros para listados de trabajadores.
type WorkerFilter struct {
	PostulacionID string
	Activo        *bool
}

// WorkerRepository puerto de persistencia para Worker.
type WorkerRepository interface {
	Create(ctx context.Context, w *entity.Worker) error
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	Update(ctx context.Context, w *entity.Worker) error
	List(ctx context.Context, f WorkerFilter) ([]*entity.Worker, error)
	Delete(ctx context.Context, id string) error
}
