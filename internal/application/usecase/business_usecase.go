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

// BusinessUseCase aplica reglas de negocio para negocios, incluido el filtro
// de propiedad: un cliente solo ve y muta lo suyo, el staff ve todo.
type BusinessUseCase struct {
	repo         repository.BusinessRepository
	categoryRepo repository.CategoryRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, categoryRepo repository.CategoryRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create registra un negocio. Un cliente siempre queda como propietario de lo
// que crea; el staff puede asignar el negocio a otro usuario vía UsuarioID.
func (uc *BusinessUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	owner := actor.ID
	if actor.Rol.IsStaff() && in.UsuarioID != "" {
		owner = in.UsuarioID
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	b := &entity.Business{
		ID:            uuid.New().String(),
		UsuarioID:     owner,
		CategoriaID:   in.CategoriaID,
		NombreNegocio: in.NombreNegocio,
		RFC:           in.RFC,
		Descripcion:   in.Descripcion,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Activo:        true,
		FechaRegistro: time.Now(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b, category), nil
}

// GetByID obtiene un negocio. Para clientes solo si son el propietario.
func (uc *BusinessUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && b.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return toBusinessResponse(b, uc.resolveCategory(ctx, b.CategoriaID)), nil
}

// List lista negocios. Para clientes el filtro de propiedad se fuerza en la
// consulta, ignorando cualquier UsuarioID que venga en el filtro.
func (uc *BusinessUseCase) List(ctx context.Context, actor *entity.User, f repository.BusinessFilter) ([]*dto.BusinessResponse, error) {
	if !actor.Rol.IsStaff() {
		f.UsuarioID = actor.ID
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBusinessResponse(b, uc.resolveCategory(ctx, b.CategoriaID)))
	}
	return out, nil
}

// Update actualiza un negocio. Los clientes solo pueden mutar los propios y
// no pueden tocar Activo.
func (uc *BusinessUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.Rol.IsStaff() && b.UsuarioID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if in.CategoriaID != nil && *in.CategoriaID != b.CategoriaID {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		b.CategoriaID = *in.CategoriaID
	}
	if in.NombreNegocio != nil {
		b.NombreNegocio = *in.NombreNegocio
	}
	if in.RFC != nil {
		b.RFC = *in.RFC
	}
	if in.Descripcion != nil {
		b.Descripcion = *in.Descripcion
	}
	if in.Direccion != nil {
		b.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		b.Telefono = *in.Telefono
	}
	if in.Activo != nil && actor.Rol.IsStaff() {
		b.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b, uc.resolveCategory(ctx, b.CategoriaID)), nil
}

// Delete elimina un negocio. Solo lo expone la ruta de admin.
func (uc *BusinessUseCase) Delete(ctx context.Context, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// resolveCategory carga la categoría para anidarla en la respuesta. Un fallo
// de lectura no tumba el listado; la categoría simplemente va vacía.
func (uc *BusinessUseCase) resolveCategory(ctx context.Context, id string) *entity.Category {
	if id == "" {
		return nil
	}
	c, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return c
}

func toBusinessResponse(b *entity.Business, c *entity.Category) *dto.BusinessResponse {
	resp := &dto.BusinessResponse{
		ID:            b.ID,
		UsuarioID:     b.UsuarioID,
		CategoriaID:   b.CategoriaID,
		NombreNegocio: b.NombreNegocio,
		RFC:           b.RFC,
		Descripcion:   b.Descripcion,
		Direccion:     b.Direccion,
		Telefono:      b.Telefono,
		Activo:        b.Activo,
		FechaRegistro: b.FechaRegistro,
	}
	if c != nil {
		resp.Categoria = toCategoryResponse(c)
	}
	return resp
}
