package admin

import (
	"context"
	"errors"
	"strings"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/logger"
	"fitlife/internal/metrics"
)

var (
	ErrEmailTaken         = api.Conflict("Admin already exists")
	ErrInvalidCredentials = api.Unauthorized("Invalid email or password")
	ErrAdminNotFound      = auth.ErrAdminNotFound
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Admin, error)
	Login(ctx context.Context, req LoginRequest) (*Admin, error)
	GetByID(ctx context.Context, id int) (*Admin, error)
	ResolveScope(ctx context.Context, id int) (auth.AdminScope, error)
	Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error)
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

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Admin, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	a, err := s.repo.Create(ctx, NewAdmin{
		Email:      email,
		Password:   req.Password,
		GymName:    strings.TrimSpace(req.GymName),
		GymAddress: strings.TrimSpace(req.GymAddress),
		Phone:      strings.TrimSpace(req.Phone),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("admin registered", "admin_id", a.ID, "gym", a.GymName)
	return a, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Admin, error) {
	a, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			metrics.RecordLogin(string(auth.KindAdmin), "failure")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.creds.Verify(req.Password, a.PasswordHash) {
		metrics.RecordLogin(string(auth.KindAdmin), "failure")
		return nil, ErrInvalidCredentials
	}

	metrics.RecordLogin(string(auth.KindAdmin), "success")
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ResolveScope(ctx context.Context, id int) (auth.AdminScope, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return auth.AdminScope{}, err
	}
	return auth.AdminScope{AdminID: a.ID, GymName: a.GymName}, nil
}

func (s *service) Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error) {
	return s.repo.Dashboard(ctx, gym)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
