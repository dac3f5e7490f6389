package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/luigibreda/Monety-Backend/internal/token"
)

// AuthUserLocalKey is the key under which the authenticated identity claims
// are stored in Fiber's context locals.
const AuthUserLocalKey = "usuario"

// RequireAuth verifies the Bearer access token and exposes its claims to
// downstream handlers.
//
// Behavior:
// - No Authorization header: 401.
// - Header present but not "Bearer <token>": 401.
// - Bad signature or expired: 403.
// - Valid: claims stored under AuthUserLocalKey, next handler runs.
func RequireAuth(tokens *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"mensagem": "Acesso negado. Nenhum token fornecido.",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"mensagem": "Acesso negado. Token mal formatado.",
			})
		}

		claims, err := tokens.ParseAccess(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"mensagem": "Token expirado.",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"mensagem": "Token inválido.",
			})
		}

		c.Locals(AuthUserLocalKey, *claims)
		return c.Next()
	}
}

// ClaimsFromCtx extracts the identity stored by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (token.Claims, bool) {
	claims, ok := c.Locals(AuthUserLocalKey).(token.Claims)
	return claims, ok
}
