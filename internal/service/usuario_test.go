package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
	"github.com/luigibreda/Monety-Backend/internal/repository/mocks"
)

// stubOwnership satisfies OwnershipVerifier with a fixed outcome.
type stubOwnership struct {
	err error
}

func (s stubOwnership) VerifyOwnership(ctx context.Context, refreshToken, userID string) error {
	return s.err
}

func TestUserList(t *testing.T) {
	ctx := context.Background()

	t.Run("maps users to their public shape", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("List", mock.Anything, repository.PageQuery{Limit: 10, Offset: 0, Search: ""}).
			Return(&repository.PageResult[model.User]{
				Items: []model.User{{ID: "u1", Name: "Ana", Email: "ana@test.com", Password: "hash", IsAdmin: true}},
				Total: 1,
			}, nil)

		env, err := NewUserService(users, stubOwnership{}).List(ctx, 0, 0, "")
		require.NoError(t, err)

		assert.Equal(t, 10, env.Limit)
		assert.Equal(t, 1, env.TotalRows)
		assert.Equal(t, 1, env.TotalPage)
		require.Len(t, env.Result, 1)
		assert.Equal(t, model.PublicUser{ID: "u1", Name: "Ana", Email: "ana@test.com"}, env.Result[0])
	})

	t.Run("offset follows the zero-based page", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("List", mock.Anything, repository.PageQuery{Limit: 5, Offset: 15, Search: "ana"}).
			Return(&repository.PageResult[model.User]{Items: nil, Total: 16}, nil)

		env, err := NewUserService(users, stubOwnership{}).List(ctx, 3, 5, "ana")
		require.NoError(t, err)
		assert.Equal(t, 3, env.Page)
		assert.Equal(t, 4, env.TotalPage)
	})
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		_, err := NewUserService(users, stubOwnership{}).Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns the public shape", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "u1").
			Return(&model.User{ID: "u1", Name: "Ana", Email: "ana@test.com", Password: "hash"}, nil)

		pub, err := NewUserService(users, stubOwnership{}).Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, &model.PublicUser{ID: "u1", Name: "Ana", Email: "ana@test.com"}, pub)
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("name and email are required", func(t *testing.T) {
		svc := NewUserService(new(mocks.MockUserRepository), stubOwnership{})

		err := svc.Update(ctx, "rt", "u1", "", "ana@test.com")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Nome é obrigatório.", vErr.Msg)

		err = svc.Update(ctx, "rt", "u1", "Ana", "")
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Email é obrigatório.", vErr.Msg)
	})

	t.Run("ownership failure propagates", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		svc := NewUserService(users, stubOwnership{err: &AuthError{Status: http.StatusForbidden}})

		err := svc.Update(ctx, "stale", "u1", "Ana", "ana@test.com")
		var aErr *AuthError
		require.ErrorAs(t, err, &aErr)
		users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updates the profile", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("UpdateProfile", mock.Anything, "u1", "Ana Maria", "ana@test.com").Return(nil)

		err := NewUserService(users, stubOwnership{}).Update(ctx, "rt", "u1", "Ana Maria", "ana@test.com")
		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin actor", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", IsAdmin: false}, nil)

		_, err := NewUserService(users, stubOwnership{}).Delete(ctx, "rt", "u1", "u2")
		var aErr *AuthError
		require.ErrorAs(t, err, &aErr)
		assert.Equal(t, http.StatusForbidden, aErr.Status)
	})

	t.Run("self deletion is refused", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "admin1").Return(&model.User{ID: "admin1", IsAdmin: true}, nil)

		_, err := NewUserService(users, stubOwnership{}).Delete(ctx, "rt", "admin1", "admin1")
		var aErr *AuthError
		require.ErrorAs(t, err, &aErr)
		assert.Equal(t, http.StatusForbidden, aErr.Status)
	})

	t.Run("target absent", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "admin1").Return(&model.User{ID: "admin1", IsAdmin: true}, nil)
		users.On("Delete", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		_, err := NewUserService(users, stubOwnership{}).Delete(ctx, "rt", "admin1", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns the deleted record", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, "admin1").Return(&model.User{ID: "admin1", IsAdmin: true}, nil)
		users.On("Delete", mock.Anything, "u2").Return(&model.User{ID: "u2", Name: "Bia"}, nil)

		deleted, err := NewUserService(users, stubOwnership{}).Delete(ctx, "rt", "admin1", "u2")
		require.NoError(t, err)
		assert.Equal(t, "u2", deleted.ID)
	})
}
