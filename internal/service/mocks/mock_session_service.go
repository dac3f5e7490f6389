package mocks

import (
	"context"

	"github.com/luigibreda/Monety-Backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	args := m.Called(ctx, name, email, password, confirmPassword)
	return args.Error(0)
}

func (m *MockSessionService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockSessionService) Me(ctx context.Context, userID string) (*model.PublicUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublicUser), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	args := m.Called(ctx, refreshToken)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionService) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) VerifyOwnership(ctx context.Context, refreshToken, userID string) error {
	args := m.Called(ctx, refreshToken, userID)
	return args.Error(0)
}
