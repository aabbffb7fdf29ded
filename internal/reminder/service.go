package reminder

import (
	"context"
	"fmt"
	"time"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/logger"
	"fitlife/internal/member"
	"fitlife/internal/metrics"
	"fitlife/internal/receipt"
)

var (
	ErrReminderNotFound = api.NotFound("Reminder not found")
	ErrMemberNotFound   = auth.ErrMemberNotFound
	ErrInvalidDueDate   = api.Validation("Invalid due date")
)

// MemberDirectory resolves a member inside the admin's gym.
type MemberDirectory interface {
	GetByID(ctx context.Context, gym auth.AdminScope, id int) (*member.Member, error)
}

// Notifier delivers a reminder outside the dashboard. Delivery failures
// never fail the request.
type Notifier interface {
	SendPaymentReminder(ctx context.Context, to, name, message string) error
}

type Service interface {
	Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Reminder, error)
	ListForMember(ctx context.Context, scope auth.MemberScope) ([]Reminder, error)
	MarkSeen(ctx context.Context, scope auth.MemberScope, id int) (*Reminder, error)
	Delete(ctx context.Context, scope auth.MemberScope, id int) error
}

type service struct {
	repo     Repository
	members  MemberDirectory
	notifier Notifier
}

// NewService accepts a nil notifier when e-mail delivery is not configured.
func NewService(repo Repository, members MemberDirectory, notifier Notifier) Service {
	return &service{
		repo:     repo,
		members:  members,
		notifier: notifier,
	}
}

func ComposeMessage(name string, amount float64, dueDate time.Time) string {
	return fmt.Sprintf("Hi %s, your gym membership payment of %s is due on %s. Please clear it to avoid interruption. Ignore if paid.",
		name, receipt.FormatAmount(amount), dueDate.Format("02 Jan 2006"))
}

func (s *service) Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Reminder, error) {
	due, err := api.ParseDate(req.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	m, err := s.members.GetByID(ctx, gym, req.MemberID)
	if err != nil {
		return nil, err
	}

	message := ComposeMessage(m.Name, req.Amount, due)
	rem, err := s.repo.Create(ctx, gym, m.ID, message, due)
	if err != nil {
		return nil, err
	}
	metrics.RecordReminder("dashboard")

	if s.notifier != nil && m.Email != nil && *m.Email != "" {
		if err := s.notifier.SendPaymentReminder(ctx, *m.Email, m.Name, message); err != nil {
			logger.Warn("reminder email not queued", "member_id", m.ID, "error", err.Error())
		} else {
			metrics.RecordReminder("email")
		}
	}

	return rem, nil
}

func (s *service) ListForMember(ctx context.Context, scope auth.MemberScope) ([]Reminder, error) {
	return s.repo.ListForMember(ctx, scope)
}

func (s *service) MarkSeen(ctx context.Context, scope auth.MemberScope, id int) (*Reminder, error) {
	return s.repo.MarkSeen(ctx, scope, id)
}

func (s *service) Delete(ctx context.Context, scope auth.MemberScope, id int) error {
	return s.repo.Delete(ctx, scope, id)
}
