package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// QuestionHandler maneja las peticiones HTTP para el catálogo de preguntas.
type QuestionHandler struct {
	uc *usecase.QuestionUseCase
}

// NewQuestionHandler construye el handler.
func NewQuestionHandler(uc *usecase.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{uc: uc}
}

// Create registra una pregunta (solo staff).
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuestionRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("pregunta creada", out))
}

// List lista preguntas con ?activa= y ?categoria=.
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	f := repository.QuestionFilter{Categoria: c.Query("categoria")}
	if v := c.Query("activa"); v != "" {
		activa := v == "true"
		f.Activa = &activa
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene una pregunta por ID.
func (h *QuestionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza una pregunta (solo staff).
func (h *QuestionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuestionRequest
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
	return c.JSON(dto.OKMsg("pregunta actualizada", out))
}

// Delete elimina una pregunta (solo admin).
func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("pregunta eliminada", nil))
}
