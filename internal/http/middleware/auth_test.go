package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luigibreda/Monety-Backend/internal/token"
)

func authTestApp(tokens *token.Issuer) *fiber.App {
	app := fiber.New()
	app.Use(RequireAuth(tokens))
	app.Get("/test", func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(claims.UserID)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewIssuer("access", "refresh", 2*time.Hour, 24*time.Hour)
	app := authTestApp(tokens)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Token abc")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := tokens.NewAccessToken(token.Claims{UserID: "u1"}, time.Now().Add(-3*time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid token exposes claims", func(t *testing.T) {
		signed, err := tokens.NewAccessToken(token.Claims{UserID: "u1", Email: "a@b.com"}, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, _ := app.Test(req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := make([]byte, 2)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, "u1", string(body[:n]))
	})
}
