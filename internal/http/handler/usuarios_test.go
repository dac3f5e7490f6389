package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/service"
	"github.com/luigibreda/Monety-Backend/internal/token"
)

func TestListarUsuarios(t *testing.T) {
	app, deps := newTestApp(t)
	deps.users.On("List", mock.Anything, 2, 5, "ana").Return(&service.PageEnvelope[model.PublicUser]{
		Result:    []model.PublicUser{{ID: "u1", Name: "Ana", Email: "ana@test.com"}},
		Page:      2,
		Limit:     5,
		TotalRows: 11,
		TotalPage: 3,
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/usuarios?page=2&limit=5&search_query=ana", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(11), body["totalRows"])
	assert.Equal(t, float64(3), body["totalPage"])
	assert.Len(t, body["result"], 1)
}

func TestObterUsuario(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Get", mock.Anything, "u1").
			Return(&model.PublicUser{ID: "u1", Name: "Ana", Email: "ana@test.com"}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/usuarios/u1", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Ana", decodeBody(t, resp)["name"])
	})

	t.Run("not found", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/usuarios/missing", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Usuário não encontrado", decodeBody(t, resp)["mensagem"])
	})
}

func TestAtualizarUsuario(t *testing.T) {
	t.Run("requires bearer token", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/usuarios/u1", fiber.Map{"name": "Ana", "email": "a@b.com"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("updates with owned refresh token", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Update", mock.Anything, "refresh-jwt", "u1", "Ana Maria", "ana@test.com").Return(nil)

		req := jsonRequest(t, http.MethodPut, "/usuarios/u1", fiber.Map{"name": "Ana Maria", "email": "ana@test.com"})
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, deps.tokens, token.Claims{UserID: "u1"}))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "refresh-jwt"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Usuário atualizado com sucesso.", decodeBody(t, resp)["message"])
	})

	t.Run("stale refresh token", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Update", mock.Anything, "stale", "u1", "Ana", "ana@test.com").
			Return(&service.AuthError{Status: http.StatusForbidden})

		req := jsonRequest(t, http.MethodPut, "/usuarios/u1", fiber.Map{"name": "Ana", "email": "ana@test.com"})
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, deps.tokens, token.Claims{UserID: "u1"}))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "stale"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestExcluirUsuario(t *testing.T) {
	t.Run("admin deletes another user", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Delete", mock.Anything, "refresh-jwt", "admin1", "u2").
			Return(&model.User{ID: "u2", Name: "Bia", Email: "bia@test.com"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/usuarios/u2", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, deps.tokens, token.Claims{UserID: "admin1", IsAdmin: true}))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "refresh-jwt"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Usuário deletado", body["message"])
		assert.Equal(t, "u2", body["data"].(map[string]any)["id"])
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Delete", mock.Anything, "refresh-jwt", "u1", "u2").
			Return(nil, &service.AuthError{Status: http.StatusForbidden})

		req := httptest.NewRequest(http.MethodDelete, "/usuarios/u2", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, deps.tokens, token.Claims{UserID: "u1"}))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "refresh-jwt"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("target absent", func(t *testing.T) {
		app, deps := newTestApp(t)
		deps.users.On("Delete", mock.Anything, "refresh-jwt", "admin1", "missing").
			Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/usuarios/missing", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, deps.tokens, token.Claims{UserID: "admin1", IsAdmin: true}))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "refresh-jwt"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
