package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// BusinessFilter filtros para listados de negocios. UsuarioID fuerza el
// alcance de propiedad (clientes solo ven lo suyo).
type BusinessFilter struct {
	CategoriaID string
	Activo      *bool
	Buscar      string // busca en nombre y RFC
	UsuarioID   string
}

// BusinessRepository puerto de persistencia para Business.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	List(ctx context.Context, f BusinessFilter) ([]*entity.Business, error)
	Delete(ctx context.Context, id string) error
	Latest(ctx context.Context, limit int) ([]*entity.Business, error)
}

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	List(ctx context.Context, activo *bool) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
