package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// FinancingFilter filtros para listados de formularios de financiamiento.
type FinancingFilter struct {
	Estado    string
	NegocioID string
	UsuarioID string
}

// FinancingRepository puerto de persistencia para FinancingForm.
type FinancingRepository interface {
	Create(ctx context.Context, f *entity.FinancingForm) error
	GetByID(ctx context.Context, id string) (*entity.FinancingForm, error)
	Update(ctx context.Context, f *entity.FinancingForm) error
	SetState(ctx context.Context, id, estado string) error
	List(ctx context.Context, filter FinancingFilter) ([]*entity.FinancingForm, error)
	Delete(ctx context.Context, id string) error
}
