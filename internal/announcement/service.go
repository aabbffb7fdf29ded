package announcement

import (
	"context"
	"strings"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/logger"
	"fitlife/internal/metrics"
)

var (
	ErrAnnouncementNotFound = api.NotFound("Announcement not found")
	ErrMessageRequired      = api.Validation("Message is required")
)

type Service interface {
	Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Announcement, error)
	ListByGym(ctx context.Context, gym auth.AdminScope) ([]Announcement, error)
	Delete(ctx context.Context, gym auth.AdminScope, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, gym auth.AdminScope, req CreateRequest) (*Announcement, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	a, err := s.repo.Create(ctx, gym, message)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnnouncement()
	logger.Info("announcement posted", "admin_id", gym.AdminID, "announcement_id", a.ID)
	return a, nil
}

func (s *service) ListByGym(ctx context.Context, gym auth.AdminScope) ([]Announcement, error) {
	return s.repo.ListByGym(ctx, gym)
}

func (s *service) Delete(ctx context.Context, gym auth.AdminScope, id int) error {
	return s.repo.Delete(ctx, gym, id)
}
