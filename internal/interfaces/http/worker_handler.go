package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// WorkerHandler maneja las peticiones HTTP para trabajadores JCF (solo staff).
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create registra un trabajador.
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("trabajador registrado", out))
}

// List lista trabajadores con ?postulacionId= y ?activo=.
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	f := repository.WorkerFilter{PostulacionID: c.Query("postulacionId")}
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

// GetByID obtiene un trabajador por ID.
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un trabajador.
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkerRequest
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
	return c.JSON(dto.OKMsg("trabajador actualizado", out))
}

// Delete elimina un trabajador (solo admin).
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("trabajador eliminado", nil))
}
