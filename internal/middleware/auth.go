package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shreyasharma003/fitplanhub/pkg/utils"
)

// Authenticate decodes a bearer token when one is present and attaches the
// caller's id and role to the request. It never rejects: handlers that need
// an identity enforce it themselves (or via RequireRole). Invalid, expired
// and missing tokens all leave the request anonymous.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Next()
		}

		c.Locals("caller_id", claims.ID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireRole rejects requests without an authenticated identity (401) or
// with the wrong role (403).
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("caller_id").(int64); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authentication required",
			})
		}
		if callerRole, ok := c.Locals("role").(string); !ok || callerRole != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied",
			})
		}
		return c.Next()
	}
}
