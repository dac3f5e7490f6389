package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/luigibreda/Monety-Backend/internal/http/middleware"
	"github.com/luigibreda/Monety-Backend/internal/service"
)

// ListarUsuarios handles GET /usuarios.
func ListarUsuarios(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, search := pageParams(c)

		env, err := users.List(c.UserContext(), page, limit, search)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusOK).JSON(env)
	}
}

// ObterUsuario handles GET /usuarios/:usuarioId.
func ObterUsuario(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.Get(c.UserContext(), c.Params("usuarioId"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"mensagem": "Usuário não encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"mensagem": "Erro interno do servidor"})
		}
		return c.JSON(user)
	}
}

// AtualizarUsuario handles PUT /usuarios/:usuarioId. The refresh cookie must
// belong to the user being updated.
func AtualizarUsuario(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		err := users.Update(c.UserContext(), c.Cookies(RefreshCookieName), c.Params("usuarioId"), body.Name, body.Email)
		if err != nil {
			return serviceError(c, err, fiber.StatusInternalServerError)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Usuário atualizado com sucesso."})
	}
}

// ExcluirUsuario handles DELETE /usuarios/:usuarioId. Admin only, never self.
func ExcluirUsuario(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		deleted, err := users.Delete(c.UserContext(), c.Cookies(RefreshCookieName), claims.UserID, c.Params("usuarioId"))
		if err != nil {
			return serviceError(c, err, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Usuário deletado",
			"data":    deleted,
		})
	}
}
