package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/auth"
	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
)

// Local key para el usuario actual en Fiber.
const localCurrentUser = "current_user"

// AuthMiddleware valida el Bearer Token, resuelve la sesión contra el gateway
// de auth y deja el usuario completo en c.Locals. Es el único punto que
// establece la identidad de la petición.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		user, err := authUC.ResolveSession(c.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
			case errors.Is(err, domain.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
			case errors.Is(err, domain.ErrUserNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
			}
		}

		c.Locals(localCurrentUser, user)
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario del contexto (después del middleware de auth).
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario actual, o "" si no hay sesión.
func GetUserID(c *fiber.Ctx) string {
	if u := GetCurrentUser(c); u != nil {
		return u.ID
	}
	return ""
}
