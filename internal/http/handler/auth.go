package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/luigibreda/Monety-Backend/internal/http/middleware"
	"github.com/luigibreda/Monety-Backend/internal/service"
)

// Registrar handles POST /auth/registrar.
func Registrar(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name            string `json:"name"`
			Email           string `json:"email"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		if err := sessions.Register(c.UserContext(), body.Name, body.Email, body.Password, body.ConfirmPassword); err != nil {
			return serviceError(c, err, fiber.StatusInternalServerError)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registro efetuado com sucesso."})
	}
}

// Entrar handles POST /auth/entrar. On success the access token goes in the
// body and the refresh token in an http-only cookie.
func Entrar(sessions service.SessionService, refreshTTL time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		access, refresh, err := sessions.Login(c.UserContext(), body.Email, body.Password)
		if err != nil {
			return serviceError(c, err, fiber.StatusInternalServerError)
		}

		setRefreshCookie(c, refresh, refreshTTL)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": access})
	}
}

// Sair handles DELETE /auth/sair. Logging out without a live session is not
// an error: 204 when nothing was cleared, 200 when a session ended.
func Sair(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cleared, err := sessions.Logout(c.UserContext(), c.Cookies(RefreshCookieName))
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		if !cleared {
			return c.SendStatus(fiber.StatusNoContent)
		}

		clearRefreshCookie(c)
		return c.SendStatus(fiber.StatusOK)
	}
}

// Eu handles GET /auth/eu, resolving the bearer identity to its user record.
func Eu(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		user, err := sessions.Me(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.SendStatus(fiber.StatusNotFound)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(user)
	}
}

// Token handles GET /token, minting a new access token from the refresh
// cookie.
func Token(sessions service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		access, err := sessions.RefreshAccess(c.UserContext(), c.Cookies(RefreshCookieName))
		if err != nil {
			return serviceError(c, err, fiber.StatusInternalServerError)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": access})
	}
}
