package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/analytics"
	"github.com/capyme/capyme-api/internal/application/dto"
)

// DashboardHandler maneja las consultas agregadas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GeneralStats devuelve los totales administrativos (solo staff).
func (h *DashboardHandler) GeneralStats(c *fiber.Ctx) error {
	out, err := h.uc.GetGeneralStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ClientStats devuelve los totales propios del cliente autenticado.
func (h *DashboardHandler) ClientStats(c *fiber.Ctx) error {
	out, err := h.uc.GetClientStats(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Charts devuelve las distribuciones para gráficas (solo staff).
func (h *DashboardHandler) Charts(c *fiber.Ctx) error {
	out, err := h.uc.GetCharts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// RecentActivity devuelve los últimos registros (solo staff).
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.uc.GetRecentActivity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// TopCourses devuelve los cursos con más inscritos (solo staff).
func (h *DashboardHandler) TopCourses(c *fiber.Ctx) error {
	out, err := h.uc.GetTopCourses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
