package repository

import (
	"context"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// AnnouncementFilter filtros para listados de avisos. Audiencias restringe la
// visibilidad por rol en la propia consulta (cliente ve "todos"+"clientes").
// Vacío = sin restricción (admin).
type AnnouncementFilter struct {
	Activo     *bool
	Tipo       string
	Audiencias []string
}

// AnnouncementRepository puerto de persistencia para Announcement.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *entity.Announcement) error
	GetByID(ctx context.Context, id string) (*entity.Announcement, error)
	Update(ctx context.Context, a *entity.Announcement) error
	List(ctx context.Context, f AnnouncementFilter) ([]*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// ResourceLinkFilter filtros para listados de enlaces.
type ResourceLinkFilter struct {
	Activo     *bool
	Tipo       string
	Categoria  string
	Audiencias []string
}

// ResourceLinkRepository puerto de persistencia para ResourceLink.
type ResourceLinkRepository interface {
	Create(ctx context.Context, l *entity.ResourceLink) error
	GetByID(ctx context.Context, id string) (*entity.ResourceLink, error)
	Update(ctx context.Context, l *entity.ResourceLink) error
	List(ctx context.Context, f ResourceLinkFilter) ([]*entity.ResourceLink, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository puerto de persistencia para la información de contacto
// (singleton: GetFirst devuelve la única fila, o nil si aún no existe).
type ContactRepository interface {
	GetFirst(ctx context.Context) (*entity.ContactInfo, error)
	Create(ctx context.Context, c *entity.ContactInfo) error
	Update(ctx context.Context, c *entity.ContactInfo) error
}
