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

// ProgramUseCase programas de apoyo y su cuestionario dinámico.
type ProgramUseCase struct {
	repo         repository.ProgramRepository
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewProgramUseCase construye el caso de uso.
func NewProgramUseCase(repo repository.ProgramRepository, questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) *ProgramUseCase {
	return &ProgramUseCase{repo: repo, questionRepo: questionRepo, categoryRepo: categoryRepo}
}

// Create registra un programa firmado por su creador.
func (uc *ProgramUseCase) Create(ctx context.Context, creadorID string, in dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	p := &entity.Program{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CategoriaID:   in.CategoriaID,
		Activo:        true,
		CreadoPor:     creadorID,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.toProgramResponse(ctx, p), nil
}

// GetByID obtiene un programa. ErrNotFound si no existe.
func (uc *ProgramUseCase) GetByID(ctx context.Context, id string) (*dto.ProgramResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toProgramResponse(ctx, p), nil
}

// List lista programas con filtros opcionales.
func (uc *ProgramUseCase) List(ctx context.Context, f repository.ProgramFilter) ([]*dto.ProgramResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProgramResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toProgramResponse(ctx, p))
	}
	return out, nil
}

// Update actualiza un programa.
func (uc *ProgramUseCase) Update(ctx context.Context, id string, in dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		p.CategoriaID = *in.CategoriaID
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.toProgramResponse(ctx, p), nil
}

// Delete elimina un programa.
func (uc *ProgramUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// AssignQuestion asigna una pregunta existente al programa. Asignar dos veces
// la misma pregunta crea dos filas; la multiplicidad se conserva.
func (uc *ProgramUseCase) AssignQuestion(ctx context.Context, programaID string, in dto.AssignQuestionRequest) (*dto.ProgramQuestionResponse, error) {
	p, err := uc.repo.GetByID(ctx, programaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	q, err := uc.questionRepo.GetByID(ctx, in.PreguntaID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	pq := &entity.ProgramQuestion{
		ID:         uuid.New().String(),
		ProgramaID: programaID,
		PreguntaID: in.PreguntaID,
		Orden:      in.Orden,
		Activa:     true,
	}
	if err := uc.repo.AssignQuestion(ctx, pq); err != nil {
		return nil, err
	}
	pq.Pregunta = q
	return toProgramQuestionResponse(pq), nil
}

// UnassignQuestion retira una pregunta del programa. Si el par estaba
// asignado varias veces, caen todas las filas.
func (uc *ProgramUseCase) UnassignQuestion(ctx context.Context, programaID, preguntaID string) error {
	p, err := uc.repo.GetByID(ctx, programaID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UnassignQuestion(ctx, programaID, preguntaID)
}

// ListQuestions devuelve el cuestionario del programa: asignaciones activas
// con su pregunta, en orden de asignación ascendente.
func (uc *ProgramUseCase) ListQuestions(ctx context.Context, programaID string) ([]*dto.ProgramQuestionResponse, error) {
	p, err := uc.repo.GetByID(ctx, programaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	pqs, err := uc.repo.ListActiveQuestions(ctx, programaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProgramQuestionResponse, 0, len(pqs))
	for _, pq := range pqs {
		out = append(out, toProgramQuestionResponse(pq))
	}
	return out, nil
}

func (uc *ProgramUseCase) toProgramResponse(ctx context.Context, p *entity.Program) *dto.ProgramResponse {
	resp := &dto.ProgramResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		CategoriaID:   p.CategoriaID,
		Activo:        p.Activo,
		CreadoPor:     p.CreadoPor,
		FechaCreacion: p.FechaCreacion,
	}
	if p.CategoriaID != "" {
		if c, err := uc.categoryRepo.GetByID(ctx, p.CategoriaID); err == nil && c != nil {
			resp.Categoria = toCategoryResponse(c)
		}
	}
	return resp
}

func toProgramQuestionResponse(pq *entity.ProgramQuestion) *dto.ProgramQuestionResponse {
	resp := &dto.ProgramQuestionResponse{
		ID:         pq.ID,
		ProgramaID: pq.ProgramaID,
		PreguntaID: pq.PreguntaID,
		Orden:      pq.Orden,
		Activa:     pq.Activa,
	}
	if pq.Pregunta != nil {
		resp.Pregunta = toQuestionResponse(pq.Pregunta)
	}
	return resp
}
