package repository

import (
	"context"

	"github.com/luigibreda/Monety-Backend/internal/model"
)

// ArquivoQuery filters an arquivo listing. When UserID is empty the query
// spans all owners (admin view). CaseInsensitive selects ILIKE matching for
// the search term; owner-scoped listings keep the case-sensitive LIKE.
type ArquivoQuery struct {
	UserID          string
	Search          string
	CaseInsensitive bool
	Limit           int
	Offset          int
}

// ArquivoRepository defines data access for arquivo metadata records.
type ArquivoRepository interface {
	// Create inserts a new arquivo row and returns the stored record.
	Create(ctx context.Context, a *model.Arquivo) (*model.Arquivo, error)

	// FindByID returns an arquivo by its ID regardless of owner.
	FindByID(ctx context.Context, id string) (*model.Arquivo, error)

	// FindByIDForUser returns an arquivo only if it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID string) (*model.Arquivo, error)

	// List returns a filtered, paginated page of arquivos ordered newest
	// first, plus the total row count for the filter.
	List(ctx context.Context, q ArquivoQuery) (*PageResult[model.Arquivo], error)

	// UpdateNomePreco updates display name and price, returning the new row.
	UpdateNomePreco(ctx context.Context, id, nome string, preco float64) (*model.Arquivo, error)

	// UpdateEstadoForUser force-sets the lifecycle state of an arquivo owned
	// by the given user, returning the new row. sql.ErrNoRows when the row
	// is absent or owned by someone else.
	UpdateEstadoForUser(ctx context.Context, id, userID string, estado int) (*model.Arquivo, error)

	// DeleteForUser removes an arquivo owned by the given user and returns
	// the deleted row. sql.ErrNoRows when absent or owned by someone else.
	DeleteForUser(ctx context.Context, id, userID string) (*model.Arquivo, error)
}
