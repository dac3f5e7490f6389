package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/luigibreda/Monety-Backend/internal/service"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// serviceError translates typed service errors to the wire. Validation
// failures carry a body, auth failures are bare status codes; anything
// unrecognized falls back to the given status.
func serviceError(c *fiber.Ctx, err error, fallback int) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Msg})
	}

	var aErr *service.AuthError
	if errors.As(err, &aErr) {
		return c.SendStatus(aErr.Status)
	}

	if errors.Is(err, service.ErrConflict) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email já está cadastrado."})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fallback)
}

// pageParams reads the pagination query parameters shared by every listing
// endpoint. A zero limit lets the service apply its own default.
func pageParams(c *fiber.Ctx) (page, limit int, search string) {
	page = c.QueryInt("page", 0)
	limit = c.QueryInt("limit", 0)
	search = c.Query("search_query")
	return page, limit, search
}

func setRefreshCookie(c *fiber.Ctx, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Expires:  time.Unix(0, 0),
	})
}
