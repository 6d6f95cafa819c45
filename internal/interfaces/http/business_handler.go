package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// BusinessHandler maneja las peticiones HTTP para negocios (protegido).
// El filtro de propiedad vive en el caso de uso: aquí solo se arma el filtro.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar negocio
// @Tags         negocios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.Response{data=dto.BusinessResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/negocios [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("negocio registrado", out))
}

// List lista negocios con ?categoriaId=, ?activo= y ?buscar=. Los clientes
// solo reciben los propios.
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	f := repository.BusinessFilter{
		CategoriaID: c.Query("categoriaId"),
		Buscar:      c.Query("buscar"),
	}
	if v := c.Query("activo"); v != "" {
		activo := v == "true"
		f.Activo = &activo
	}
	out, err := h.uc.List(c.Context(), GetCurrentUser(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListMine lista los negocios del usuario autenticado, sea cual sea su rol.
func (h *BusinessHandler) ListMine(c *fiber.Ctx) error {
	f := repository.BusinessFilter{UsuarioID: GetUserID(c)}
	out, err := h.uc.List(c.Context(), GetCurrentUser(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene un negocio por ID.
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un negocio propio (cliente) o cualquiera (staff).
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Update(c.Context(), GetCurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("negocio actualizado", out))
}

// Delete elimina un negocio (solo admin).
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("negocio eliminado", nil))
}
