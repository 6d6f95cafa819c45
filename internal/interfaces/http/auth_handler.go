package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/auth"
	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
	"github.com/capyme/capyme-api/pkg/validate"
)

// AuthHandler maneja registro y login (rutas públicas).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.Response{data=dto.AuthResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("usuario registrado", out))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response{data=dto.AuthResponse}
// @Failure      401   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("credenciales inválidas"))
		}
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("sesión iniciada", out))
}

// Me devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autenticado"))
	}
	return c.JSON(dto.OK(auth.ToUserResponse(user)))
}
