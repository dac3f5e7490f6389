package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/luigibreda/Monety-Backend/internal/http/middleware"
	"github.com/luigibreda/Monety-Backend/internal/service"
	"github.com/luigibreda/Monety-Backend/internal/token"
)

// HealthCheck reports readiness: the database must answer a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness is a plain liveness probe.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches every HTTP route to the Fiber app. The catch-all
// per-user listing goes last so it cannot shadow the static prefixes.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	tokens *token.Issuer,
	sessions service.SessionService,
	users service.UserService,
	arquivos service.ArquivoService,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	auth := middleware.RequireAuth(tokens)

	app.Post("/auth/registrar", Registrar(sessions))
	app.Post("/auth/entrar", Entrar(sessions, tokens.RefreshTTL()))
	app.Delete("/auth/sair", Sair(sessions))
	app.Get("/auth/eu", auth, Eu(sessions))
	app.Get("/token", Token(sessions))

	app.Get("/usuarios", ListarUsuarios(users))
	app.Get("/usuarios/:usuarioId", ObterUsuario(users))
	app.Put("/usuarios/:usuarioId", auth, AtualizarUsuario(users))
	app.Delete("/usuarios/:usuarioId", auth, ExcluirUsuario(users))

	app.Get("/arquivos", auth, ListarArquivos(arquivos))
	app.Post("/arquivos/upload", auth, UploadArquivo(arquivos))
	app.Get("/arquivos/:arquivoId", ObterArquivo(arquivos))
	app.Put("/:userId/arquivos/:arquivoId", auth, EditarArquivo(arquivos))
	app.Delete("/arquivos/:arquivoId", auth, ExcluirArquivo(arquivos))
	app.Post("/arquivos/:arquivoId/pausarDespausarArquivo", auth, PausarDespausarArquivo(arquivos))
	app.Post("/arquivos/:arquivoId/aprovarArquivo", auth, AprovarArquivo(arquivos))
	app.Post("/arquivos/:arquivoId/reprovarArquivo", auth, ReprovarArquivo(arquivos))
	app.Get("/baixar/:arquivoId", BaixarArquivo(arquivos))

	app.Get("/:userId/arquivos", ListarArquivosDoUsuario(arquivos))
}
