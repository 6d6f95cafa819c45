package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol cliente, hashea password con bcrypt y emite
// el token. El registro público nunca acepta un rol: cuentas de staff solo se
// crean vía edición de admin. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Telefono:      in.Telefono,
		Rol:           entity.RoleCliente,
		Activo:        true,
		FechaRegistro: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Rol), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Usuario: *ToUserResponse(user), Token: token}, nil
}

// Login verifica email/password, sella la última sesión y emite el JWT.
// Credenciales inválidas devuelven ErrUnauthorized sin distinguir si el email
// existe; cuenta desactivada devuelve ErrInactiveUser.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrInactiveUser
	}
	now := time.Now()
	if err := uc.userRepo.StampSession(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.UltimaSesion = &now
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Rol), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Usuario: *ToUserResponse(user), Token: token}, nil
}

// ToUserResponse proyecta un usuario al DTO público, sin el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Email:         u.Email,
		Telefono:      u.Telefono,
		Rol:           string(u.Rol),
		Activo:        u.Activo,
		FotoPerfilURL: u.FotoPerfilURL,
		FechaRegistro: u.FechaRegistro,
		UltimaSesion:  u.UltimaSesion,
	}
}
