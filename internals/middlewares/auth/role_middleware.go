package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helperAuth "sgescolar_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError valida o papel (via role_cache) + mensagem custom
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc := helperAuth.GetRoleCache(c)
		if rc.Role == "" || !rc.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		log.Printf("[DEBUG] Papel do utilizador: %s\n", rc.Role)

		for _, allowed := range allowedRoles {
			if rc.Role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut para uso mais limpo
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

func OnlyRolesSlice(customMessage string, roles []string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
