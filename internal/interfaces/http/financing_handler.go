package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/application/usecase"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/validate"
)

// FinancingHandler maneja las peticiones HTTP para financiamiento.
type FinancingHandler struct {
	uc *usecase.FinancingUseCase
}

// NewFinancingHandler construye el handler.
func NewFinancingHandler(uc *usecase.FinancingUseCase) *FinancingHandler {
	return &FinancingHandler{uc: uc}
}

// Create registra una solicitud de financiamiento.
func (h *FinancingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancingRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OKMsg("solicitud registrada", out))
}

// List lista solicitudes con ?estado= y ?negocioId=. Los clientes solo
// reciben las propias.
func (h *FinancingHandler) List(c *fiber.Ctx) error {
	f := repository.FinancingFilter{
		Estado:    c.Query("estado"),
		NegocioID: c.Query("negocioId"),
	}
	out, err := h.uc.List(c.Context(), GetCurrentUser(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene una solicitud por ID.
func (h *FinancingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update actualiza monto, plazo o destino.
func (h *FinancingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFinancingRequest
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
	return c.JSON(dto.OKMsg("solicitud actualizada", out))
}

// SetState cambia el estado de la solicitud (solo staff).
func (h *FinancingHandler) SetState(c *fiber.Ctx) error {
	var in dto.SetFinancingStateRequest
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

// Delete elimina una solicitud (solo admin).
func (h *FinancingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMsg("solicitud eliminada", nil))
}
