package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/capyme/capyme-api/internal/application/auth"
	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con filtros opcionales de rol y activo.
func (uc *UserUseCase) List(ctx context.Context, f repository.UserFilter) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// UpdateProfile actualiza el propio perfil del usuario autenticado. Nunca
// toca rol, email ni activo; el password, si viene, se re-hashea.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		user.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		user.Telefono = *in.Telefono
	}
	if in.FotoPerfilURL != nil {
		user.FotoPerfilURL = *in.FotoPerfilURL
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// AdminUpdate edición administrativa: puede cambiar email, rol y activo.
// Un rol fuera del conjunto cerrado devuelve ErrInvalidInput.
func (uc *UserUseCase) AdminUpdate(ctx context.Context, id string, in dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Rol != nil {
		rol := entity.Role(*in.Rol)
		if !rol.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Rol = rol
	}
	if in.Nombre != nil {
		user.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		user.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		user.Telefono = *in.Telefono
	}
	if in.Activo != nil {
		user.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario por ID. ErrUserNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}
