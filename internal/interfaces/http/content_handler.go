package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// AnnouncementHandler maneja las peticiones HTTP para avisos.
type AnnouncementHandler struct {
	uc *usecase.AnnouncementUseCase
}

// NewAnnouncementHandler construye el handler.
func NewAnnouncementHandler(uc *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// Create publica un aviso (solo staff).
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAnnouncementRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("aviso publicado", out))
}

// List lista avisos visibles para el rol del lector; ?tipo= filtra por tipo.
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	f := repository.AnnouncementFilter{Tipo: c.Query("tipo")}
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

// GetByID obtiene un aviso si el rol del lector alcanza su destinatario.
func (h *AnnouncementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un aviso (solo staff).
func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAnnouncementRequest
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
	return c.JSON(dto.OKMsg("aviso actualizado", out))
}

// Delete elimina un aviso (solo admin).
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("aviso eliminado", nil))
}

// ResourceLinkHandler maneja las peticiones HTTP para enlaces de recursos.
type ResourceLinkHandler struct {
	uc *usecase.ResourceLinkUseCase
}

// NewResourceLinkHandler construye el handler.
func NewResourceLinkHandler(uc *usecase.ResourceLinkUseCase) *ResourceLinkHandler {
	return &ResourceLinkHandler{uc: uc}
}

// Create registra un enlace (solo staff).
func (h *ResourceLinkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceLinkRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("enlace creado", out))
}

// List lista enlaces visibles para el rol del lector; ?tipo= y ?categoria=.
func (h *ResourceLinkHandler) List(c *fiber.Ctx) error {
	f := repository.ResourceLinkFilter{
		Tipo:      c.Query("tipo"),
		Categoria: c.Query("categoria"),
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

// GetByID obtiene un enlace si el rol del lector alcanza su visibilidad.
func (h *ResourceLinkHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza un enlace (solo staff).
func (h *ResourceLinkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResourceLinkRequest
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
	return c.JSON(dto.OKMsg("enlace actualizado", out))
}

// Delete elimina un enlace (solo admin).
func (h *ResourceLinkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("enlace eliminado", nil))
}

// ContactHandler maneja la información de contacto (singleton).
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Get devuelve la información de contacto, creándola vacía si no existe.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza la información de contacto (solo staff).
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailErr("datos inválidos", err))
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("contacto actualizado", out))
}
