package mocks

import (
	"context"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/luigibreda/Monety-Backend/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, page, limit int, search string) (*service.PageEnvelope[model.PublicUser], error) {
	args := m.Called(ctx, page, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageEnvelope[model.PublicUser]), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.PublicUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublicUser), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, refreshToken, userID, name, email string) error {
	args := m.Called(ctx, refreshToken, userID, name, email)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, refreshToken, actorID, targetID string) (*model.User, error) {
	args := m.Called(ctx, refreshToken, actorID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
