package middleware

import (
	"strings"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	ContextClaimsKey = "sessionClaims"
	ContextUserIDKey = "userID"
)

// RequireAuth verifies the Bearer session credential and stores the claims
// in the request context for downstream handlers.
func RequireAuth(issuer *utils.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid Authorization header"})
		}

		claims, err := issuer.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextUserIDKey, claims.UserID)

		return c.Next()
	}
}

func GetSessionClaims(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.SessionClaims)
	return claims, ok
}
