package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// ApplicationHandler maneja las peticiones HTTP para postulaciones.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear postulación
// @Tags         postulaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApplicationRequest  true  "Negocio, programa y respuestas"
// @Success      201   {object}  dto.Response{data=dto.ApplicationResponse}
// @Failure      400   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/postulaciones [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Create(c.Context(), GetCurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("postulación creada", out))
}

// List lista postulaciones con ?estado=, ?programaId= y ?negocioId=. Los
// clientes solo reciben las propias.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	f := repository.ApplicationFilter{
		Estado:     c.Query("estado"),
		ProgramaID: c.Query("programaId"),
		NegocioID:  c.Query("negocioId"),
	}
	out, err := h.uc.List(c.Context(), GetCurrentUser(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListMine lista las postulaciones del usuario autenticado.
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	f := repository.ApplicationFilter{UsuarioID: GetUserID(c)}
	out, err := h.uc.List(c.Context(), GetCurrentUser(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene una postulación con sus respuestas ordenadas.
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateAnswers reemplaza el conjunto completo de respuestas.
func (h *ApplicationHandler) UpdateAnswers(c *fiber.Ctx) error {
	var in dto.UpdateAnswersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.UpdateAnswers(c.Context(), GetCurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("respuestas actualizadas", out))
}

// SetState cambia estado y notas administrativas (solo staff).
func (h *ApplicationHandler) SetState(c *fiber.Ctx) error {
	var in dto.SetApplicationStateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.SetState(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("estado actualizado", out))
}

// Delete elimina una postulación (solo admin).
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("postulación eliminada", nil))
}
