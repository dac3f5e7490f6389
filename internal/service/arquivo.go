package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/luigibreda/Monety-Backend/internal/cache"
	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
	"github.com/luigibreda/Monety-Backend/internal/storage"
	"github.com/luigibreda/Monety-Backend/internal/token"
)

// Placeholder record created when an upload arrives with no file attached.
// Kept byte-for-byte compatible with the historic records in production.
const (
	blankNome     = "Arquivo em Branco"
	blankPath     = `uploads\arquivo_mock`
	blankFilename = "c0b34bf13c609f5d1b8d649329fdf916"
	blankTipo     = "application/octet-stream"
)

// DownloadResult is the fully buffered payload of a file download.
// It is what the long-TTL cache stores: content is immutable once uploaded.
type DownloadResult struct {
	Data []byte
	Nome string
	Tipo string
}

// ArquivoService mediates every read and mutation of arquivo records,
// combining token identity with ownership checks and consulting the
// read-through caches before the repository.
type ArquivoService interface {
	// ListAll returns the caller's files, or every file when the caller is
	// an admin. Admin search is case-insensitive, owner search is not.
	ListAll(ctx context.Context, identity token.Claims, page, limit int, search string) (*PageEnvelope[model.Arquivo], error)

	// ListByUser returns a user's files without authentication.
	ListByUser(ctx context.Context, userID string, page, limit int, search string) (*PageEnvelope[model.Arquivo], error)

	// Get returns a single arquivo without authentication.
	Get(ctx context.Context, id string) (*model.Arquivo, error)

	// Edit updates name and price of a file owned by the path's user. The
	// presented refresh token must be that user's stored one.
	Edit(ctx context.Context, refreshToken, userID, arquivoID, nome string, preco float64) (*model.Arquivo, error)

	// ToggleEstado flips the actor's own file between unpaused (0) and
	// paused (3). ErrNotOwned when the file belongs to someone else.
	ToggleEstado(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error)

	// Aprovar force-sets the actor's own file to approved regardless of
	// current state.
	Aprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error)

	// Reprovar force-sets the actor's own file to rejected regardless of
	// current state.
	Reprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error)

	// Delete removes a file owned by the actor and returns the deleted record.
	Delete(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error)

	// Upload stores the content in the object store and persists its
	// metadata. A nil reader creates the blank placeholder record instead
	// of failing.
	Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Arquivo, error)

	// Download returns the full file payload, served from the long-TTL
	// cache when possible.
	Download(ctx context.Context, id string) (*DownloadResult, error)
}

type arquivoService struct {
	arquivos  repository.ArquivoRepository
	store     storage.Storage
	ownership OwnershipVerifier
	pages     *cache.Cache[*PageEnvelope[model.Arquivo]]
	records   *cache.Cache[*model.Arquivo]
	downloads *cache.Cache[*DownloadResult]
	now       func() time.Time
}

// NewArquivoService constructs an ArquivoService. listTTL bounds staleness of
// list/detail responses; downloadTTL bounds the cached file payloads. Writes
// never invalidate entries.
func NewArquivoService(
	arquivos repository.ArquivoRepository,
	store storage.Storage,
	ownership OwnershipVerifier,
	listTTL, downloadTTL time.Duration,
) ArquivoService {
	return &arquivoService{
		arquivos:  arquivos,
		store:     store,
		ownership: ownership,
		pages:     cache.New[*PageEnvelope[model.Arquivo]]("arquivo_pages", listTTL),
		records:   cache.New[*model.Arquivo]("arquivo_records", listTTL),
		downloads: cache.New[*DownloadResult]("arquivo_downloads", downloadTTL),
		now:       time.Now,
	}
}

func (s *arquivoService) ListAll(ctx context.Context, identity token.Claims, page, limit int, search string) (*PageEnvelope[model.Arquivo], error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	// The visibility scope is part of the key so a cached admin page can
	// never be served to a non-admin caller.
	scope := identity.UserID
	if identity.IsAdmin {
		scope = "admin"
	}
	key := cache.Key("getAllArquivos", scope, page, limit, search)
	if env, ok := s.pages.Get(key); ok {
		return env, nil
	}

	q := repository.ArquivoQuery{
		Search: search,
		Limit:  limit,
		Offset: page * limit,
	}
	if identity.IsAdmin {
		q.CaseInsensitive = true
	} else {
		q.UserID = identity.UserID
	}

	res, err := s.arquivos.List(ctx, q)
	if err != nil {
		return nil, err
	}

	env := &PageEnvelope[model.Arquivo]{
		Result:    res.Items,
		Page:      page,
		Limit:     limit,
		TotalRows: res.Total,
		TotalPage: totalPages(res.Total, limit),
	}
	s.pages.Put(key, env)
	return env, nil
}

func (s *arquivoService) ListByUser(ctx context.Context, userID string, page, limit int, search string) (*PageEnvelope[model.Arquivo], error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 5
	}

	res, err := s.arquivos.List(ctx, repository.ArquivoQuery{
		UserID: userID,
		Search: search,
		Limit:  limit,
		Offset: page * limit,
	})
	if err != nil {
		return nil, err
	}

	return &PageEnvelope[model.Arquivo]{
		Result:    res.Items,
		Page:      page,
		Limit:     limit,
		TotalRows: res.Total,
		TotalPage: totalPages(res.Total, limit),
	}, nil
}

func (s *arquivoService) Get(ctx context.Context, id string) (*model.Arquivo, error) {
	key := cache.Key("getArquivo", id)
	if a, ok := s.records.Get(key); ok {
		return a, nil
	}

	a, err := s.arquivos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.records.Put(key, a)
	return a, nil
}

func (s *arquivoService) Edit(ctx context.Context, refreshToken, userID, arquivoID, nome string, preco float64) (*model.Arquivo, error) {
	// The cookie presence check outranks input validation: a request that is
	// both unauthenticated and incomplete answers 401.
	if refreshToken == "" {
		return nil, errNoToken
	}
	if nome == "" {
		return nil, validation("Nome Obrigatório")
	}
	if preco == 0 {
		return nil, validation("Preço Obrigatório")
	}

	if err := s.ownership.VerifyOwnership(ctx, refreshToken, userID); err != nil {
		return nil, err
	}

	if _, err := s.arquivos.FindByIDForUser(ctx, arquivoID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.arquivos.UpdateNomePreco(ctx, arquivoID, nome, preco)
}

func (s *arquivoService) setEstado(ctx context.Context, refreshToken, actorID, arquivoID string, estado func(current int) int) (*model.Arquivo, error) {
	if err := s.ownership.VerifyOwnership(ctx, refreshToken, actorID); err != nil {
		return nil, err
	}

	// The existence check is deliberately unscoped so a foreign file answers
	// "not owned", not "not found".
	a, err := s.arquivos.FindByID(ctx, arquivoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated, err := s.arquivos.UpdateEstadoForUser(ctx, arquivoID, actorID, estado(a.Estado))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotOwned
		}
		return nil, err
	}
	return updated, nil
}

func (s *arquivoService) ToggleEstado(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	// 0 doubles as the unpaused value here; approved files that were never
	// paused carry 2 and toggle back to 0, not to 2.
	return s.setEstado(ctx, refreshToken, actorID, arquivoID, func(current int) int {
		if current == model.EstadoPendente {
			return model.EstadoPausado
		}
		return model.EstadoPendente
	})
}

func (s *arquivoService) Aprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	return s.setEstado(ctx, refreshToken, actorID, arquivoID, func(int) int {
		return model.EstadoAprovado
	})
}

func (s *arquivoService) Reprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	return s.setEstado(ctx, refreshToken, actorID, arquivoID, func(int) int {
		return model.EstadoReprovado
	})
}

func (s *arquivoService) Delete(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	if err := s.ownership.VerifyOwnership(ctx, refreshToken, actorID); err != nil {
		return nil, err
	}

	deleted, err := s.arquivos.DeleteForUser(ctx, arquivoID, actorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if deleted.Path != blankPath {
		if err := s.store.Delete(ctx, deleted.Path); err != nil {
			return nil, fmt.Errorf("delete storage: %w", err)
		}
	}
	return deleted, nil
}

func (s *arquivoService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Arquivo, error) {
	if r == nil {
		// Deliberate fallback: an upload with no file yields a placeholder
		// record instead of an error.
		return s.arquivos.Create(ctx, &model.Arquivo{
			ID:        uuid.New().String(),
			Nome:      blankNome,
			Path:      blankPath,
			Filename:  blankFilename,
			UserID:    userID,
			Tipo:      blankTipo,
			Tamanho:   "0",
			Estado:    model.EstadoPendente,
			CreatedAt: s.now().UTC(),
		})
	}

	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("uploads", genName))

	if contentType == "" {
		contentType = blankTipo
	}

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.arquivos.Create(ctx, &model.Arquivo{
		ID:        uuid.New().String(),
		Nome:      originalFilename,
		Path:      objInfo.Key,
		Filename:  genName,
		UserID:    userID,
		Tipo:      contentType,
		Tamanho:   strconv.FormatInt(objInfo.Size, 10),
		Estado:    model.EstadoPendente,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *arquivoService) Download(ctx context.Context, id string) (*DownloadResult, error) {
	key := cache.Key("downloadArquivo", id)
	if res, ok := s.downloads.Get(key); ok {
		return res, nil
	}

	a, err := s.arquivos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, a.Path)
	if err != nil {
		return nil, ErrNotFound
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}

	res := &DownloadResult{Data: data, Nome: a.Nome, Tipo: a.Tipo}
	s.downloads.Put(key, res)
	return res, nil
}
