package repository

import (
	"context"

	"github.com/luigibreda/Monety-Backend/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by its unique email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByRefreshToken returns the user whose stored refresh token equals
	// the given value. At most one row matches since each user holds a single
	// live token.
	FindByRefreshToken(ctx context.Context, token string) (*model.User, error)

	// UpdateRefreshToken overwrites the stored refresh token. A nil value
	// clears it (logout).
	UpdateRefreshToken(ctx context.Context, id string, token *string) error

	// UpdateProfile updates name and email.
	UpdateProfile(ctx context.Context, id, name, email string) error

	// Delete removes a user and returns the deleted row.
	Delete(ctx context.Context, id string) (*model.User, error)

	// List returns a paginated page of users whose name or email contains
	// the search term, plus the total row count for that filter.
	List(ctx context.Context, q PageQuery) (*PageResult[model.User], error)
}

// PageQuery holds limit/offset pagination parameters and an optional
// substring search term.
type PageQuery struct {
	Limit  int
	Offset int
	Search string
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
