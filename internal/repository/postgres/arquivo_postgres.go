package postgres

import (
	"context"
	"database/sql"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
)

// ArquivoPostgres is a PostgreSQL implementation of repository.ArquivoRepository.
type ArquivoPostgres struct {
	db *sql.DB
}

// NewArquivoPostgres creates a new ArquivoPostgres repository.
func NewArquivoPostgres(db *sql.DB) *ArquivoPostgres {
	return &ArquivoPostgres{db: db}
}

var _ repository.ArquivoRepository = (*ArquivoPostgres)(nil)

const arquivoColumns = `id, nome, path, filename, user_id, tipo, tamanho, estado, preco, created_at`

func scanArquivo(row interface{ Scan(...any) error }) (*model.Arquivo, error) {
	var a model.Arquivo
	if err := row.Scan(
		&a.ID,
		&a.Nome,
		&a.Path,
		&a.Filename,
		&a.UserID,
		&a.Tipo,
		&a.Tamanho,
		&a.Estado,
		&a.Preco,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new arquivo row and returns the stored record.
func (r *ArquivoPostgres) Create(ctx context.Context, a *model.Arquivo) (*model.Arquivo, error) {
	const q = `
		INSERT INTO arquivos (id, nome, path, filename, user_id, tipo, tamanho, estado, preco, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + arquivoColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Nome,
		a.Path,
		a.Filename,
		a.UserID,
		a.Tipo,
		a.Tamanho,
		a.Estado,
		a.Preco,
		a.CreatedAt,
	)
	return scanArquivo(row)
}

// FindByID fetches a single arquivo by its ID.
func (r *ArquivoPostgres) FindByID(ctx context.Context, id string) (*model.Arquivo, error) {
	const q = `SELECT ` + arquivoColumns + ` FROM arquivos WHERE id = $1`
	return scanArquivo(r.db.QueryRowContext(ctx, q, id))
}

// FindByIDForUser fetches an arquivo only when owned by the given user.
func (r *ArquivoPostgres) FindByIDForUser(ctx context.Context, id, userID string) (*model.Arquivo, error) {
	const q = `SELECT ` + arquivoColumns + ` FROM arquivos WHERE id = $1 AND user_id = $2`
	return scanArquivo(r.db.QueryRowContext(ctx, q, id, userID))
}

// List returns a filtered page of arquivos plus the total row count.
// LIKE keeps the owner-scoped search case-sensitive; ILIKE serves the
// admin-wide case-insensitive search.
func (r *ArquivoPostgres) List(ctx context.Context, q repository.ArquivoQuery) (*repository.PageResult[model.Arquivo], error) {
	match := `nome LIKE '%' || $1 || '%'`
	if q.CaseInsensitive {
		match = `nome ILIKE '%' || $1 || '%'`
	}

	where := ` WHERE ` + match
	countArgs := []any{q.Search}
	listArgs := []any{q.Search}
	if q.UserID != "" {
		where += ` AND user_id = $2`
		countArgs = append(countArgs, q.UserID)
		listArgs = append(listArgs, q.UserID)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM arquivos`+where, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	limitPos := "$2 OFFSET $3"
	if q.UserID != "" {
		limitPos = "$3 OFFSET $4"
	}
	qList := `SELECT ` + arquivoColumns + ` FROM arquivos` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ` + limitPos
	listArgs = append(listArgs, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, qList, listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Arquivo, 0)
	for rows.Next() {
		a, err := scanArquivo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Arquivo]{
		Items: items,
		Total: total,
	}, nil
}

// UpdateNomePreco updates display name and price.
func (r *ArquivoPostgres) UpdateNomePreco(ctx context.Context, id, nome string, preco float64) (*model.Arquivo, error) {
	const q = `UPDATE arquivos SET nome = $2, preco = $3 WHERE id = $1 RETURNING ` + arquivoColumns
	return scanArquivo(r.db.QueryRowContext(ctx, q, id, nome, preco))
}

// UpdateEstadoForUser force-sets the lifecycle state of a row owned by the
// given user. Yields sql.ErrNoRows when nothing matched.
func (r *ArquivoPostgres) UpdateEstadoForUser(ctx context.Context, id, userID string, estado int) (*model.Arquivo, error) {
	const q = `UPDATE arquivos SET estado = $3 WHERE id = $1 AND user_id = $2 RETURNING ` + arquivoColumns
	return scanArquivo(r.db.QueryRowContext(ctx, q, id, userID, estado))
}

// DeleteForUser removes an arquivo owned by the given user and returns the
// deleted record. Yields sql.ErrNoRows when nothing matched.
func (r *ArquivoPostgres) DeleteForUser(ctx context.Context, id, userID string) (*model.Arquivo, error) {
	const q = `DELETE FROM arquivos WHERE id = $1 AND user_id = $2 RETURNING ` + arquivoColumns
	return scanArquivo(r.db.QueryRowContext(ctx, q, id, userID))
}
