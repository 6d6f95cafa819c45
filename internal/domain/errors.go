package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInactiveUser       = errors.New("usuario inactivo")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCourseInactive     = errors.New("el curso no está disponible")
	ErrCourseFull         = errors.New("el curso ha alcanzado el cupo máximo")
	ErrAlreadyEnrolled    = errors.New("el usuario ya está inscrito en este curso")
)
