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

// WorkerUseCase trabajadores JCF colocados vía postulaciones.
type WorkerUseCase struct {
	repo    repository.WorkerRepository
	appRepo repository.ApplicationRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository, appRepo repository.ApplicationRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo, appRepo: appRepo}
}

// Create registra un trabajador ligado a una postulación existente.
func (uc *WorkerUseCase) Create(ctx context.Context, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	app, err := uc.appRepo.GetByID(ctx, in.PostulacionID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	w := &entity.Worker{
		ID:            uuid.New().String(),
		PostulacionID: in.PostulacionID,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		CURP:          in.CURP,
		Activo:        true,
		FechaRegistro: time.Now(),
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// GetByID obtiene un trabajador. ErrNotFound si no existe.
func (uc *WorkerUseCase) GetByID(ctx context.Context, id string) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkerResponse(w), nil
}

// List lista trabajadores con filtros opcionales.
func (uc *WorkerUseCase) List(ctx context.Context, f repository.WorkerFilter) ([]*dto.WorkerResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWorkerResponse(w))
	}
	return out, nil
}

// Update actualiza un trabajador.
func (uc *WorkerUseCase) Update(ctx context.Context, id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		w.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		w.Apellido = *in.Apellido
	}
	if in.CURP != nil {
		w.CURP = *in.CURP
	}
	if in.Activo != nil {
		w.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// Delete elimina un trabajador.
func (uc *WorkerUseCase) Delete(ctx context.Context, id string) error {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:            w.ID,
		PostulacionID: w.PostulacionID,
		Nombre:        w.Nombre,
		Apellido:      w.Apellido,
		CURP:          w.CURP,
		Activo:        w.Activo,
		FechaRegistro: w.FechaRegistro,
	}
}
