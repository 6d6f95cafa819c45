package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// QuestionUseCase catálogo de preguntas de formulario.
type QuestionUseCase struct {
	repo repository.QuestionRepository
}

// NewQuestionUseCase construye el caso de uso.
func NewQuestionUseCase(repo repository.QuestionRepository) *QuestionUseCase {
	return &QuestionUseCase{repo: repo}
}

// Create registra una pregunta firmada por su creador.
func (uc *QuestionUseCase) Create(ctx context.Context, creadorID string, in dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	q := &entity.Question{
		ID:            uuid.New().String(),
		Texto:         in.Texto,
		TipoRespuesta: in.TipoRespuesta,
		Categoria:     in.Categoria,
		Orden:         in.Orden,
		Activa:        true,
		CreadoPor:     creadorID,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return toQuestionResponse(q), nil
}

// GetByID obtiene una pregunta. ErrNotFound si no existe.
func (uc *QuestionUseCase) GetByID(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return toQuestionResponse(q), nil
}

// List lista preguntas del catálogo en orden ascendente.
func (uc *QuestionUseCase) List(ctx context.Context, f repository.QuestionFilter) ([]*dto.QuestionResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuestionResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuestionResponse(q))
	}
	return out, nil
}

// Update actualiza una pregunta.
func (uc *QuestionUseCase) Update(ctx context.Context, id string, in dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if in.Texto != nil {
		q.Texto = *in.Texto
	}
	if in.TipoRespuesta != nil {
		q.TipoRespuesta = *in.TipoRespuesta
	}
	if in.Categoria != nil {
		q.Categoria = *in.Categoria
	}
	if in.Orden != nil {
		q.Orden = *in.Orden
	}
	if in.Activa != nil {
		q.Activa = *in.Activa
	}
	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return toQuestionResponse(q), nil
}

// Delete elimina una pregunta del catálogo.
func (uc *QuestionUseCase) Delete(ctx context.Context, id string) error {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:            q.ID,
		Texto:         q.Texto,
		TipoRespuesta: q.TipoRespuesta,
		Categoria:     q.Categoria,
		Orden:         q.Orden,
		Activa:        q.Activa,
		CreadoPor:     q.CreadoPor,
		FechaCreacion: q.FechaCreacion,
	}
}
