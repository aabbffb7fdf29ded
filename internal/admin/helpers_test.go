package admin

import (
	"context"
	"strings"

	"fitlife/internal/auth"

	"github.com/stretchr/testify/mock"
)

type fakeCredentials struct{}

func (fakeCredentials) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeCredentials) Verify(plain, digest string) bool {
	return strings.TrimPrefix(digest, "hashed:") == plain && strings.HasPrefix(digest, "hashed:")
}

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, attrs NewAdmin) (*Admin, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error) {
	args := m.Called(ctx, gym)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Dashboard), args.Error(1)
}

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*Admin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*Admin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id int) (*Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func (m *MockService) ResolveScope(ctx context.Context, id int) (auth.AdminScope, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(auth.AdminScope), args.Error(1)
}

func (m *MockService) Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error) {
	args := m.Called(ctx, gym)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Dashboard), args.Error(1)
}
