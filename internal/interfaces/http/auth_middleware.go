package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/capyme/capyme-api/internal/application/dto"
	"github.com/capyme/capyme-api/internal/domain/entity"
	"github.com/capyme/capyme-api/internal/domain/repository"
	"github.com/capyme/capyme-api/pkg/jwt"
)

// Locals key para el usuario autenticado en Fiber.
const LocalCurrentUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT, carga el usuario desde la base y
// lo deja en c.Locals. Un token válido de una cuenta borrada o desactivada se
// rechaza igual que uno inválido: el estado de la cuenta manda sobre el token.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		user, err := userRepo.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.FailErr("error al validar la sesión", err))
		}
		if user == nil || !user.Activo {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("cuenta inexistente o desactivada"))
		}
		c.Locals(LocalCurrentUser, user)
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles indicados. Se monta después de
// AuthMiddleware; sin usuario en Locals responde 401.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autenticado"))
		}
		for _, r := range roles {
			if user.Rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("acceso denegado para este rol"))
	}
}

// RequireStaff restringe la ruta a admin y colaborador.
func RequireStaff() fiber.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleColaborador)
}

// GetCurrentUser devuelve el usuario autenticado del contexto, o nil.
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	if u := GetCurrentUser(c); u != nil {
		return u.ID
	}
	return ""
}

// GetRole devuelve el rol del usuario autenticado, o cadena vacía.
func GetRole(c *fiber.Ctx) entity.Role {
	if u := GetCurrentUser(c); u != nil {
		return u.Rol
	}
	return ""
}
