package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/metrics"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMemberNotFound       = auth.ErrMemberNotFound
	ErrEmailTaken           = api.Conflict("Member email already in use")
	ErrNameAndPhoneRequired = api.Validation("Name and phone are required")
	ErrInvalidMembership    = api.Validation("Membership type must be one of: Basic, Standard, Premium, VIP")
	ErrInvalidExpiryDate    = api.Validation("Invalid expiry date")
	ErrInvalidEmail         = api.Validation("Invalid email")
	ErrEmptyPassword        = api.Validation("Password cannot be empty")
	ErrInvalidCredentials   = api.Unauthorized("Invalid email or password")
)

type Service interface {
	Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Member, error)
	List(ctx context.Context, gym auth.AdminScope) ([]Member, error)
	GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Member, error)
	Update(ctx context.Context, gym auth.AdminScope, id int, req UpdateRequest) (*Member, error)
	Delete(ctx context.Context, gym auth.AdminScope, id int) error
	SendPaymentNotice(ctx context.Context, gym auth.AdminScope, id int) (*Notice, error)
	Login(ctx context.Context, req LoginRequest) (*Member, error)
	ResolveScope(ctx context.Context, id int) (auth.MemberScope, error)
	Profile(ctx context.Context, scope auth.MemberScope) (*Member, error)
}

type service struct {
	repo  Repository
	creds auth.Credentials
}

func NewService(repo Repository, creds auth.Credentials) Service {
	return &service{
		repo:  repo,
		creds: creds,
	}
}

func (s *service) Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Member, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, ErrNameAndPhoneRequired
	}

	plan := strings.TrimSpace(req.MembershipType)
	if plan == "" {
		plan = PlanBasic
	}
	if !membershipTypes[plan] {
		return nil, ErrInvalidMembership
	}

	attrs := NewMember{
		Name:           name,
		Phone:          phone,
		MembershipType: plan,
		Password:       req.Password,
	}

	if email := normalizeEmail(req.Email); email != "" {
		if !validEmail(email) {
			return nil, ErrInvalidEmail
		}
		attrs.Email = &email
	}

	if strings.TrimSpace(req.ExpiryDate) != "" {
		expiry, err := api.ParseDate(req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidExpiryDate
		}
		attrs.ExpiryDate = &expiry
	}

	m, err := s.repo.Create(ctx, gym, attrs)
	if err != nil {
		return nil, err
	}

	metrics.RecordMemberCreated()
	return m, nil
}

func (s *service) List(ctx context.Context, gym auth.AdminScope) ([]Member, error) {
	return s.repo.ListByGym(ctx, gym)
}

func (s *service) GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Member, error) {
	return s.repo.GetByID(ctx, gym, id)
}

func (s *service) Update(ctx context.Context, gym auth.AdminScope, id int, req UpdateRequest) (*Member, error) {
	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, gym, id, patch)
}

func buildPatch(req UpdateRequest) (Patch, error) {
	var p Patch

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return Patch{}, ErrNameAndPhoneRequired
		}
		p.Name = &name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			return Patch{}, ErrNameAndPhoneRequired
		}
		p.Phone = &phone
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != "" && !validEmail(email) {
			return Patch{}, ErrInvalidEmail
		}
		p.Email = &email
	}
	if req.MembershipType != nil {
		plan := strings.TrimSpace(*req.MembershipType)
		if !membershipTypes[plan] {
			return Patch{}, ErrInvalidMembership
		}
		p.MembershipType = &plan
	}
	if req.ExpiryDate != nil && strings.TrimSpace(*req.ExpiryDate) != "" {
		expiry, err := api.ParseDate(*req.ExpiryDate)
		if err != nil {
			return Patch{}, ErrInvalidExpiryDate
		}
		p.ExpiryDate = &expiry
	}
	if req.Password != nil {
		if *req.Password == "" {
			return Patch{}, ErrEmptyPassword
		}
		p.Password = req.Password
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, gym auth.AdminScope, id int) error {
	return s.repo.Delete(ctx, gym, id)
}

func (s *service) SendPaymentNotice(ctx context.Context, gym auth.AdminScope, id int) (*Notice, error) {
	m, err := s.repo.GetByID(ctx, gym, id)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.AddNotice(ctx, gym, m.ID, paymentNotice(m, gym.GymName))
	if err != nil {
		return nil, err
	}

	metrics.RecordReminder("dashboard")
	return n, nil
}

func paymentNotice(m *Member, gymName string) string {
	due := "is due"
	if m.ExpiryDate != nil {
		due = "is due on " + m.ExpiryDate.Format("02 Jan 2006")
	}
	return fmt.Sprintf("Hi %s, your %s membership payment %s. Please clear it to avoid interruption. Ignore if paid. - %s",
		m.Name, m.MembershipType, due, gymName)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Member, error) {
	m, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			metrics.RecordLogin(string(auth.KindMember), "failure")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.creds.Verify(req.Password, m.PasswordHash) {
		metrics.RecordLogin(string(auth.KindMember), "failure")
		return nil, ErrInvalidCredentials
	}

	metrics.RecordLogin(string(auth.KindMember), "success")
	return m, nil
}

func (s *service) ResolveScope(ctx context.Context, id int) (auth.MemberScope, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return auth.MemberScope{}, err
	}
	return auth.MemberScope{MemberID: m.ID, AdminID: m.AdminID, GymName: m.GymName}, nil
}

func (s *service) Profile(ctx context.Context, scope auth.MemberScope) (*Member, error) {
	m, err := s.repo.FindByID(ctx, scope.MemberID)
	if err != nil {
		return nil, err
	}

	notices, err := s.repo.ListNotices(ctx, scope)
	if err != nil {
		return nil, err
	}
	m.Reminders = notices
	return m, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var validate = validator.New()

// validEmail matches the create binding's email rule.
func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}
