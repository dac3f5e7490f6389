package postgres

import (
	"context"
	"database/sql"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, email, password, is_admin, refresh_token, created_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.IsAdmin,
		&u.RefreshToken,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, name, email, password, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		u.IsAdmin,
		u.CreatedAt,
	)
	return scanUser(row)
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByRefreshToken fetches the user currently holding the given refresh token.
func (r *UserPostgres) FindByRefreshToken(ctx context.Context, token string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, token))
}

// UpdateRefreshToken overwrites the stored refresh token; nil clears it.
func (r *UserPostgres) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	const q = `UPDATE users SET refresh_token = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, token)
	return err
}

// UpdateProfile updates name and email.
func (r *UserPostgres) UpdateProfile(ctx context.Context, id, name, email string) error {
	const q = `UPDATE users SET name = $2, email = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, name, email)
	return err
}

// Delete removes a user row and returns the deleted record.
func (r *UserPostgres) Delete(ctx context.Context, id string) (*model.User, error) {
	const q = `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// List returns users whose name or email contains the search term,
// newest first, using LIMIT/OFFSET pagination and a total count.
func (r *UserPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	const qCount = `
		SELECT COUNT(*) FROM users
		WHERE name LIKE '%' || $1 || '%' OR email LIKE '%' || $1 || '%'
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.Search).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + userColumns + `
		FROM users
		WHERE name LIKE '%' || $1 || '%' OR email LIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Search, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.User]{
		Items: items,
		Total: total,
	}, nil
}
