package mocks

import (
	"context"
	"io"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/service"
	"github.com/luigibreda/Monety-Backend/internal/token"
	"github.com/stretchr/testify/mock"
)

type MockArquivoService struct {
	mock.Mock
}

func (m *MockArquivoService) ListAll(ctx context.Context, identity token.Claims, page, limit int, search string) (*service.PageEnvelope[model.Arquivo], error) {
	args := m.Called(ctx, identity, page, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageEnvelope[model.Arquivo]), args.Error(1)
}

func (m *MockArquivoService) ListByUser(ctx context.Context, userID string, page, limit int, search string) (*service.PageEnvelope[model.Arquivo], error) {
	args := m.Called(ctx, userID, page, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageEnvelope[model.Arquivo]), args.Error(1)
}

func (m *MockArquivoService) Get(ctx context.Context, id string) (*model.Arquivo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Edit(ctx context.Context, refreshToken, userID, arquivoID, nome string, preco float64) (*model.Arquivo, error) {
	args := m.Called(ctx, refreshToken, userID, arquivoID, nome, preco)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) ToggleEstado(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	args := m.Called(ctx, refreshToken, actorID, arquivoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Aprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	args := m.Called(ctx, refreshToken, actorID, arquivoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Reprovar(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	args := m.Called(ctx, refreshToken, actorID, arquivoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Delete(ctx context.Context, refreshToken, actorID, arquivoID string) (*model.Arquivo, error) {
	args := m.Called(ctx, refreshToken, actorID, arquivoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Arquivo, error) {
	args := m.Called(ctx, userID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoService) Download(ctx context.Context, id string) (*service.DownloadResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadResult), args.Error(1)
}
