package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// CourseHandler maneja las peticiones HTTP para cursos e inscripciones.
type CourseHandler struct {
	uc *usecase.CourseUseCase
}

// NewCourseHandler construye el handler.
func NewCourseHandler(uc *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

// Create registra un curso (solo staff).
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCourseRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("curso creado", out))
}

// List lista cursos con ?activo= y ?modalidad=.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	f := repository.CourseFilter{Modalidad: c.Query("modalidad")}
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

// GetByID obtiene un curso con su conteo de inscritos.
func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un curso (solo staff).
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCourseRequest
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
	return c.JSON(dto.OKMsg("curso actualizado", out))
}

// Delete elimina un curso (solo admin).
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("curso eliminado", nil))
}

// Enroll godoc
// @Summary      Inscribirse a un curso
// @Tags         cursos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del curso"
// @Param        body  body  dto.EnrollRequest  false  "Negocio asociado (opcional)"
// @Success      201   {object}  dto.Response{data=dto.EnrollmentResponse}
// @Failure      400   {object}  dto.Response  "curso inactivo o cupo completo"
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response  "ya inscrito"
// @Router       /api/cursos/{id}/inscripcion [post]
func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	var in dto.EnrollRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
		}
	}
	out, err := h.uc.Enroll(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("inscripción realizada", out))
}

// ListEnrollments devuelve los inscritos del curso (solo staff).
func (h *CourseHandler) ListEnrollments(c *fiber.Ctx) error {
	out, err := h.uc.ListEnrollments(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
