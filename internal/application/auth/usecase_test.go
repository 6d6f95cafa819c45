package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/capyme/capyme-api/internal/application/auth"
	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
	pkgjwt "github.com/capyme/capyme-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "test-secret-key", ExpMinutes: 60, Issuer: "capyme-test"}

// fakeUserRepo repositorio de usuarios en memoria indexado por id y email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.Rol != "" && string(u.Rol) != f.Rol {
			continue
		}
		if f.Activo != nil && u.Activo != *f.Activo {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) StampSession(_ context.Context, id string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.UltimaSesion = &at
	}
	return nil
}

func seedUser(r *fakeUserRepo, id, email, password string, rol entity.Role, activo bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[id] = &entity.User{
		ID: id, Nombre: "Ana", Apellido: "García", Email: email,
		PasswordHash: string(hash), Rol: rol, Activo: activo,
		FechaRegistro: time.Now(),
	}
}

func TestRegister_CreaClienteYEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Luis", Apellido: "Mora", Email: "luis@example.com", Password: "secreto1",
	})
	require.NoError(t, err)

	// El registro público siempre produce rol cliente, venga lo que venga.
	assert.Equal(t, string(entity.RoleCliente), resp.Usuario.Rol)
	assert.True(t, resp.Usuario.Activo)

	userID, email, rol, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.Equal(t, resp.Usuario.ID, userID)
	assert.Equal(t, "luis@example.com", email)
	assert.Equal(t, string(entity.RoleCliente), rol)

	// El password queda hasheado, nunca plano.
	stored := repo.users[resp.Usuario.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", "secreto1", entity.RoleCliente, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Otra", Apellido: "Ana", Email: "ana@example.com", Password: "secreto2",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidas_SellaUltimaSesion(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", "secreto1", entity.RoleCliente, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Usuario.UltimaSesion, "el login sella la última sesión")
	assert.NotNil(t, repo.users["u1"].UltimaSesion)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", "secreto1", entity.RoleCliente, true)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// El email inexistente y el password incorrecto devuelven el mismo error:
// el login no revela si la cuenta existe.
func TestLogin_EmailInexistente_MismoErrorQuePasswordMalo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaDesactivada_Rechaza(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", "secreto1", entity.RoleCliente, false)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}
