package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain"
)

// respondError traduce errores de dominio a estatus HTTP con el sobre JSON
// uniforme. Cualquier error no mapeado es un 500 con el detalle en "error".
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyEnrolled):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrCourseInactive),
		errors.Is(err, domain.ErrCourseFull):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInactiveUser), errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.FailErr("error interno", err))
	}
}
