package member

import (
	"context"
	"strings"

	"fitlife/internal/auth"

	"github.com/stretchr/testify/mock"
)

type fakeCredentials struct{}

func (fakeCredentials) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeCredentials) Verify(plain, digest string) bool {
	return strings.HasPrefix(digest, "hashed:") && strings.TrimPrefix(digest, "hashed:") == plain
}

var (
	alpha = auth.AdminScope{AdminID: 1, GymName: "Alpha"}
	beta  = auth.AdminScope{AdminID: 2, GymName: "Beta"}
)

func strPtr(s string) *string { return &s }

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, gym auth.AdminScope, attrs NewMember) (*Member, error) {
	args := m.Called(ctx, gym, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gym auth.AdminScope) ([]Member, error) {
	args := m.Called(ctx, gym)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Member, error) {
	args := m.Called(ctx, gym, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, gym auth.AdminScope, id int, patch Patch) (*Member, error) {
	args := m.Called(ctx, gym, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, gym auth.AdminScope, id int) error {
	args := m.Called(ctx, gym, id)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) AddNotice(ctx context.Context, gym auth.AdminScope, id int, message string) (*Notice, error) {
	args := m.Called(ctx, gym, id, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notice), args.Error(1)
}

func (m *MockRepository) ListNotices(ctx context.Context, scope auth.MemberScope) ([]Notice, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notice), args.Error(1)
}
