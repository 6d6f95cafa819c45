package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// ProgramHandler maneja las peticiones HTTP para programas y su cuestionario.
type ProgramHandler struct {
	uc *usecase.ProgramUseCase
}

// NewProgramHandler construye el handler.
func NewProgramHandler(uc *usecase.ProgramUseCase) *ProgramHandler {
	return &ProgramHandler{uc: uc}
}

// Create registra un programa (solo staff).
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProgramRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("programa creado", out))
}

// List lista programas con ?activo= y ?categoriaId=.
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	f := repository.ProgramFilter{CategoriaID: c.Query("categoriaId")}
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

// GetByID obtiene un programa por ID.
func (h *ProgramHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un programa (solo staff).
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProgramRequest
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
	return c.JSON(dto.OKMsg("programa actualizado", out))
}

// Delete elimina un programa (solo admin).
func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("programa eliminado", nil))
}

// AssignQuestion asigna una pregunta al programa (solo staff).
func (h *ProgramHandler) AssignQuestion(c *fiber.Ctx) error {
	var in dto.AssignQuestionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.AssignQuestion(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("pregunta asignada", out))
}

// UnassignQuestion retira una pregunta del programa (solo staff).
func (h *ProgramHandler) UnassignQuestion(c *fiber.Ctx) error {
	if err := h.uc.UnassignQuestion(c.Context(), c.Params("id"), c.Params("preguntaId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("pregunta retirada", nil))
}

// ListQuestions devuelve el cuestionario ordenado del programa.
func (h *ProgramHandler) ListQuestions(c *fiber.Ctx) error {
	out, err := h.uc.ListQuestions(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
