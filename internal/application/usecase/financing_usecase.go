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

// FinancingUseCase solicitudes de financiamiento. Mismo esquema de propiedad
// que las postulaciones: el cliente dueño del negocio o el staff.
type FinancingUseCase struct {
	repo         repository.FinancingRepository
	businessRepo repository.BusinessRepository
}

// NewFinancingUseCase construye el caso de uso.
func NewFinancingUseCase(repo repository.FinancingRepository, businessRepo repository.BusinessRepository) *FinancingUseCase {
	return &FinancingUseCase{repo: repo, businessRepo: businessRepo}
}

// Create registra una solicitud en estado pendiente. El negocio debe existir
// y, para clientes, ser propio.
func (uc *FinancingUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateFinancingRequest) (*dto.FinancingResponse, error) {
	business, err := uc.businessRepo.GetByID(ctx, in.NegocioID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && business.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	f := &entity.FinancingForm{
		ID:              uuid.New().String(),
		NegocioID:       in.NegocioID,
		UsuarioID:       business.UsuarioID,
		MontoSolicitado: in.MontoSolicitado,
		PlazoMeses:      in.PlazoMeses,
		Destino:         in.Destino,
		Estado:          "pendiente",
		FechaSolicitud:  time.Now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFinancingResponse(f), nil
}

// GetByID obtiene una solicitud. Para clientes solo la propia.
func (uc *FinancingUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.FinancingResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && f.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return toFinancingResponse(f), nil
}

// List lista solicitudes. Para clientes el alcance se fuerza en la consulta.
func (uc *FinancingUseCase) List(ctx context.Context, actor *entity.User, filter repository.FinancingFilter) ([]*dto.FinancingResponse, error) {
	if !actor.Rol.IsStaff() {
		filter.UsuarioID = actor.ID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FinancingResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFinancingResponse(f))
	}
	return out, nil
}

// Update actualiza monto, plazo o destino. Para clientes solo la propia.
func (uc *FinancingUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateFinancingRequest) (*dto.FinancingResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && f.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if in.MontoSolicitado != nil {
		f.MontoSolicitado = *in.MontoSolicitado
	}
	if in.PlazoMeses != nil {
		f.PlazoMeses = *in.PlazoMeses
	}
	if in.Destino != nil {
		f.Destino = *in.Destino
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFinancingResponse(f), nil
}

// SetState cambia el estado de la solicitud (solo rutas de staff).
func (uc *FinancingUseCase) SetState(ctx context.Context, id string, in dto.SetFinancingStateRequest) (*dto.FinancingResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetState(ctx, id, in.Estado); err != nil {
		return nil, err
	}
	f.Estado = in.Estado
	return toFinancingResponse(f), nil
}

// Delete elimina una solicitud.
func (uc *FinancingUseCase) Delete(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toFinancingResponse(f *entity.FinancingForm) *dto.FinancingResponse {
	return &dto.FinancingResponse{
		ID:              f.ID,
		NegocioID:       f.NegocioID,
		UsuarioID:       f.UsuarioID,
		MontoSolicitado: f.MontoSolicitado,
		PlazoMeses:      f.PlazoMeses,
		Destino:         f.Destino,
		Estado:          f.Estado,
		FechaSolicitud:  f.FechaSolicitud,
	}
}
