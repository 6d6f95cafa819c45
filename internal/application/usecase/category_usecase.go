package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías de negocio.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create registra una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &entity.Category{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activo:      true,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría. ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// List lista categorías, opcionalmente solo las activas.
func (uc *CategoryUseCase) List(ctx context.Context, activo *bool) ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, activo)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
}
