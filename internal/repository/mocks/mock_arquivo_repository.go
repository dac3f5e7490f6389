package mocks

import (
	"context"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockArquivoRepository struct {
	mock.Mock
}

func (m *MockArquivoRepository) Create(ctx context.Context, a *model.Arquivo) (*model.Arquivo, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoRepository) FindByID(ctx context.Context, id string) (*model.Arquivo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.Arquivo, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoRepository) List(ctx context.Context, q repository.ArquivoQuery) (*repository.PageResult[model.Arquivo], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Arquivo]), args.Error(1)
}

func (m *MockArquivoRepository) UpdateNomePreco(ctx context.Context, id, nome string, preco float64) (*model.Arquivo, error) {
	args := m.Called(ctx, id, nome, preco)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoRepository) UpdateEstadoForUser(ctx context.Context, id, userID string, estado int) (*model.Arquivo, error) {
	args := m.Called(ctx, id, userID, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}

func (m *MockArquivoRepository) DeleteForUser(ctx context.Context, id, userID string) (*model.Arquivo, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Arquivo), args.Error(1)
}
