package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/pkg/validate"
)

// CategoryHandler maneja las peticiones HTTP para categorías de negocio.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create registra una categoría (solo staff).
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("categoría creada", out))
}

// List lista categorías; ?activo=true filtra las activas.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var activo *bool
	if v := c.Query("activo"); v != "" {
		b := v == "true"
		activo = &b
	}
	out, err := h.uc.List(c.Context(), activo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene una categoría por ID.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza una categoría (solo staff).
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("categoría actualizada", out))
}

// Delete elimina una categoría (solo admin).
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("categoría eliminada", nil))
}
