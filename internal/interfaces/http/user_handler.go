package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// UserHandler maneja las peticiones HTTP para usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista usuarios con filtros ?rol= y ?activo= (solo staff).
func (h *UserHandler) List(c *fiber.Ctx) error {
	f := repository.UserFilter{Rol: c.Query("rol")}
	if v := c.Query("activo"); v != "" {
		activo := v == "true"
		f.Activo = &activo
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene un usuario por ID (solo staff).
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateProfile actualiza el propio perfil del usuario autenticado.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("perfil actualizado", out))
}

// AdminUpdate edición administrativa de un usuario (solo admin).
func (h *UserHandler) AdminUpdate(c *fiber.Ctx) error {
	var in dto.AdminUpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.AdminUpdate(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("usuario actualizado", out))
}

// Delete elimina un usuario (solo admin).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("usuario eliminado", nil))
}
