package reminder

import (
	"context"
	"time"

	"fitlife/internal/auth"
	"fitlife/internal/member"

	"github.com/stretchr/testify/mock"
)

var (
	alpha = auth.AdminScope{AdminID: 1, GymName: "Alpha"}
	jane  = auth.MemberScope{MemberID: 10, AdminID: 1, GymName: "Alpha"}
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, gym auth.AdminScope, memberID int, message string, dueDate time.Time) (*Reminder, error) {
	args := m.Called(ctx, gym, memberID, message, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reminder), args.Error(1)
}

func (m *MockRepository) ListForMember(ctx context.Context, scope auth.MemberScope) ([]Reminder, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Reminder), args.Error(1)
}

func (m *MockRepository) MarkSeen(ctx context.Context, scope auth.MemberScope, id int) (*Reminder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reminder), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, scope auth.MemberScope, id int) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetByID(ctx context.Context, gym auth.AdminScope, id int) (*member.Member, error) {
	args := m.Called(ctx, gym, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendPaymentReminder(ctx context.Context, to, name, message string) error {
	args := m.Called(ctx, to, name, message)
	return args.Error(0)
}
