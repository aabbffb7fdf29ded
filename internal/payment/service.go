package payment

import (
	"context"
	"strings"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/logger"
	"fitlife/internal/metrics"
	"fitlife/internal/receipt"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = api.NotFound("Payment not found")
	ErrMemberNotFound  = auth.ErrMemberNotFound
	ErrPlanRequired    = api.Validation("Plan is required")
	ErrInvalidPlan     = api.Validation("Plan must be one of: Basic, Standard, Premium, VIP")
)

type Service interface {
	Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Payment, error)
	List(ctx context.Context, gym auth.AdminScope) ([]Payment, error)
	Receipt(ctx context.Context, gym auth.AdminScope, id int) (receipt.Data, error)
}

type service struct {
	repo          Repository
	receiptNumber func() string
}

func NewService(repo Repository) Service {
	return &service{
		repo:          repo,
		receiptNumber: newReceiptNumber,
	}
}

func newReceiptNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RCPT-" + strings.ToUpper(id[:8])
}

func (s *service) Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Payment, error) {
	plan := strings.TrimSpace(req.Plan)
	if plan == "" {
		return nil, ErrPlanRequired
	}
	if !plans[plan] {
		return nil, ErrInvalidPlan
	}

	p, err := s.repo.Create(ctx, gym, NewPayment{
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		Plan:          plan,
		ReceiptNumber: s.receiptNumber(),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(p.Plan, p.Amount)
	logger.Info("payment recorded",
		"admin_id", gym.AdminID,
		"payment_id", p.ID,
		"receipt", p.ReceiptNumber,
	)
	return p, nil
}

func (s *service) List(ctx context.Context, gym auth.AdminScope) ([]Payment, error) {
	return s.repo.ListByGym(ctx, gym)
}

func (s *service) Receipt(ctx context.Context, gym auth.AdminScope, id int) (receipt.Data, error) {
	p, err := s.repo.GetByID(ctx, gym, id)
	if err != nil {
		return receipt.Data{}, err
	}

	return receipt.Data{
		ReceiptNumber: p.ReceiptNumber,
		Date:          p.PaymentDate,
		MemberName:    p.MemberName,
		Plan:          p.Plan,
		Amount:        p.Amount,
		GymName:       p.GymName,
	}, nil
}
