package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
)

var userCols = []string{"id", "name", "email", "password", "is_admin", "refresh_token", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &model.User{
		ID:        "test-uuid",
		Name:      "Ana",
		Email:     "ana@test.com",
		Password:  "hash",
		IsAdmin:   false,
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(userCols).
		AddRow(u.ID, u.Name, u.Email, u.Password, u.IsAdmin, nil, u.CreatedAt)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.ID, u.Name, u.Email, u.Password, u.IsAdmin, u.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, u)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, u.ID, result.ID)
	assert.Nil(t, result.RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow("u1", "Ana", "ana@test.com", "hash", true, "refresh-jwt", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("ana@test.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "ana@test.com")

		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.True(t, u.IsAdmin)
		assert.NotNil(t, u.RefreshToken)
		assert.Equal(t, "refresh-jwt", *u.RefreshToken)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("ghost@test.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "ghost@test.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, u)
	})
}

func TestUserPostgres_FindByRefreshToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(userCols).
		AddRow("u1", "Ana", "ana@test.com", "hash", false, "refresh-jwt", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE refresh_token = ?").
		WithArgs("refresh-jwt").
		WillReturnRows(rows)

	u, err := repo.FindByRefreshToken(ctx, "refresh-jwt")

	assert.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_UpdateRefreshToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("set", func(t *testing.T) {
		token := "refresh-jwt"
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("u1", token).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRefreshToken(ctx, "u1", &token))
	})

	t.Run("clear", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("u1", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRefreshToken(ctx, "u1", nil))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)

	mock.ExpectExec("UPDATE users SET name").
		WithArgs("u1", "Ana Maria", "ana@test.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateProfile(context.Background(), "u1", "Ana Maria", "ana@test.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("returns the deleted row", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow("u2", "Bia", "bia@test.com", "hash", false, nil, time.Now())

		mock.ExpectQuery("DELETE FROM users WHERE id = (.+) RETURNING").
			WithArgs("u2").
			WillReturnRows(rows)

		deleted, err := repo.Delete(ctx, "u2")

		assert.NoError(t, err)
		assert.Equal(t, "Bia", deleted.Name)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM users WHERE id = (.+) RETURNING").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT(.+) FROM users").
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows(userCols).
		AddRow("u1", "Ana", "ana@test.com", "hash", false, nil, time.Now()).
		AddRow("u2", "Mariana", "mari@test.com", "hash", false, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ana", 5, 10).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 5, Offset: 10, Search: "ana"})

	assert.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, "Mariana", res.Items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
