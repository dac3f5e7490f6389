package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/luigibreda/Monety-Backend/internal/http/middleware"
	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/service"
)

// ListarArquivos handles GET /arquivos. Admins see every file, everyone else
// only their own.
func ListarArquivos(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		page, limit, search := pageParams(c)

		env, err := arquivos.ListAll(c.UserContext(), claims, page, limit, search)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.Status(fiber.StatusOK).JSON(env)
	}
}

// ListarArquivosDoUsuario handles GET /:userId/arquivos. Public listing.
func ListarArquivosDoUsuario(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, search := pageParams(c)

		env, err := arquivos.ListByUser(c.UserContext(), c.Params("userId"), page, limit, search)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(env)
	}
}

// ObterArquivo handles GET /arquivos/:arquivoId.
func ObterArquivo(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := arquivos.Get(c.UserContext(), c.Params("arquivoId"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Arquivo não encontrado."})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.Status(fiber.StatusOK).JSON(a)
	}
}

// EditarArquivo handles PUT /:userId/arquivos/:arquivoId.
func EditarArquivo(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}

		a, err := arquivos.Edit(c.UserContext(), c.Cookies(RefreshCookieName),
			c.Params("userId"), c.Params("arquivoId"), body.Name, body.Price)
		if err != nil {
			return serviceError(c, err, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

func estadoHandler(
	message string,
	change func(c *fiber.Ctx, refreshToken, actorID, arquivoID string) (*model.Arquivo, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		a, err := change(c, c.Cookies(RefreshCookieName), claims.UserID, c.Params("arquivoId"))
		if err != nil {
			return serviceError(c, err, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": message,
			"data":    a,
		})
	}
}

// PausarDespausarArquivo handles POST /arquivos/:arquivoId/pausarDespausarArquivo.
func PausarDespausarArquivo(arquivos service.ArquivoService) fiber.Handler {
	return estadoHandler("Estado do arquivo modificado com sucesso",
		func(c *fiber.Ctx, rt, actorID, id string) (*model.Arquivo, error) {
			return arquivos.ToggleEstado(c.UserContext(), rt, actorID, id)
		})
}

// AprovarArquivo handles POST /arquivos/:arquivoId/aprovarArquivo.
func AprovarArquivo(arquivos service.ArquivoService) fiber.Handler {
	return estadoHandler("Arquivo aprovado com sucesso",
		func(c *fiber.Ctx, rt, actorID, id string) (*model.Arquivo, error) {
			return arquivos.Aprovar(c.UserContext(), rt, actorID, id)
		})
}

// ReprovarArquivo handles POST /arquivos/:arquivoId/reprovarArquivo.
func ReprovarArquivo(arquivos service.ArquivoService) fiber.Handler {
	return estadoHandler("Arquivo reprovado com sucesso",
		func(c *fiber.Ctx, rt, actorID, id string) (*model.Arquivo, error) {
			return arquivos.Reprovar(c.UserContext(), rt, actorID, id)
		})
}

// ExcluirArquivo handles DELETE /arquivos/:arquivoId.
func ExcluirArquivo(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		deleted, err := arquivos.Delete(c.UserContext(), c.Cookies(RefreshCookieName), claims.UserID, c.Params("arquivoId"))
		if err != nil {
			return serviceError(c, err, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Arquivo deletado",
			"data":    deleted,
		})
	}
}

// firstFile picks the file to persist from a multipart form. The "file"
// field wins; otherwise any field carrying files serves.
func firstFile(form *multipart.Form) *multipart.FileHeader {
	if fhs := form.File["file"]; len(fhs) > 0 {
		return fhs[0]
	}
	for _, fhs := range form.File {
		if len(fhs) > 0 {
			return fhs[0]
		}
	}
	return nil
}

// UploadArquivo handles POST /arquivos/upload. A request without a file is
// not rejected: it yields the blank placeholder record. Only the first file
// of a batch is persisted.
func UploadArquivo(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		var fh *multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil {
			fh = firstFile(form)
		}

		if fh == nil {
			a, err := arquivos.Upload(c.UserContext(), claims.UserID, nil, "", "", 0)
			if err != nil {
				return serviceError(c, err, fiber.StatusBadRequest)
			}
			return c.Status(fiber.StatusCreated).JSON(a)
		}

		f, err := fh.Open()
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		defer f.Close()

		a, err := arquivos.Upload(c.UserContext(), claims.UserID, f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			return serviceError(c, err, fiber.StatusBadRequest)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// BaixarArquivo handles GET /baixar/:arquivoId, streaming the stored bytes
// with the metadata headers.
func BaixarArquivo(arquivos service.ArquivoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := arquivos.Download(c.UserContext(), c.Params("arquivoId"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Arquivo não encontrado."})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+res.Nome)
		c.Set(fiber.HeaderContentType, res.Tipo)
		return c.Send(res.Data)
	}
}
