package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
	apphttp "github.com/capyme/capyme-api/internal/interfaces/http"
	pkgjwt "github.com/capyme/capyme-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "capyme-test"
	testExpMin    = 60
)

// stubUserRepo respaldo mínimo del middleware: solo GetByID se consulta.
type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Update(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) List(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Delete(_ context.Context, id string) error { delete(r.users, id); return nil }
func (r *stubUserRepo) StampSession(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func newStubRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func activeUser(id string, rol entity.Role) *entity.User {
	return &entity.User{ID: id, Nombre: "Test", Email: id + "@example.com", Rol: rol, Activo: true}
}

// buildTestApp construye una app Fiber mínima con AuthMiddleware + RequireRole
// y un handler que devuelve 200 si pasa los middlewares.
func buildTestApp(repo repository.UserRepository, allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, repo)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":   true,
			"id":   apphttp.GetUserID(c),
			"role": apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor genera un JWT firmado para el usuario indicado.
func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Email, string(u.Rol), testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido_CargaElUsuario(t *testing.T) {
	u := activeUser("u1", entity.RoleCliente)
	app := buildTestApp(newStubRepo(u))

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "cliente", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newStubRepo())

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newStubRepo())

	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un esquema distinto de Bearer debe rechazarse")
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(newStubRepo())

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token válido de una cuenta borrada se rechaza: el estado de la cuenta
// manda sobre el token.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	u := activeUser("u1", entity.RoleCliente)
	app := buildTestApp(newStubRepo()) // repo vacío: el usuario ya no existe

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CuentaDesactivada_Retorna401(t *testing.T) {
	u := activeUser("u1", entity.RoleCliente)
	u.Activo = false
	app := buildTestApp(newStubRepo(u))

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cuenta desactivada no puede usar tokens previos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole / RequireStaff
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	u := activeUser("u1", entity.RoleAdmin)
	app := buildTestApp(newStubRepo(u), entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

func TestRequireRole_ColaboradorAccedeRutaStaff(t *testing.T) {
	u := activeUser("u1", entity.RoleColaborador)
	app := buildTestApp(newStubRepo(u), entity.RoleAdmin, entity.RoleColaborador)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"colaborador debe poder acceder a ruta que permite admin o colaborador")
}

func TestRequireRole_ClienteBloqueadoEnRutaStaff(t *testing.T) {
	u := activeUser("u1", entity.RoleCliente)
	app := buildTestApp(newStubRepo(u), entity.RoleAdmin, entity.RoleColaborador)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cliente no debe poder acceder a rutas de staff")
}

func TestRequireRole_ColaboradorBloqueadoEnRutaAdmin(t *testing.T) {
	u := activeUser("u1", entity.RoleColaborador)
	app := buildTestApp(newStubRepo(u), entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u1", "u1@example.com", "colaborador", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, rol, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "u1", userID)
	assert.Equal(t, "u1@example.com", email)
	assert.Equal(t, "colaborador", rol)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u1", "u1@example.com", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "u1", "u1@example.com", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
