package repository

import (
	"context"
	"time"

	"github.com/capyme/capyme-api/internal/domain/entity"
)

// UserFilter filtros opcionales para listados de usuarios.
type UserFilter struct {
	Rol    string
	Activo *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	// StampSession registra la última sesión del usuario (login exitoso).
	StampSession(ctx context.Context, id string, at time.Time) error
}
