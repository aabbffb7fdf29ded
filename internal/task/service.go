package task

import (
	"context"
	"strings"

	"fitlife/internal/api"
	"fitlife/internal/auth"
)

var (
	ErrTaskNotFound  = api.NotFound("Task not found")
	ErrTextRequired  = api.Validation("Task text is required")
	ErrInvalidStatus = api.Validation("Status must be Pending, In Progress or Completed")
	ErrEmptyUpdate   = api.Validation("Nothing to update")
)

type Service interface {
	Create(ctx context.Context, scope auth.MemberScope, req CreateRequest) (*Task, error)
	List(ctx context.Context, scope auth.MemberScope) ([]Task, error)
	Update(ctx context.Context, scope auth.MemberScope, id int, req UpdateRequest) (*Task, error)
	Delete(ctx context.Context, scope auth.MemberScope, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s *service) Create(ctx context.Context, scope auth.MemberScope, req CreateRequest) (*Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	return s.repo.Create(ctx, scope, text, status)
}

func (s *service) List(ctx context.Context, scope auth.MemberScope) ([]Task, error) {
	return s.repo.List(ctx, scope)
}

func (s *service) Update(ctx context.Context, scope auth.MemberScope, id int, req UpdateRequest) (*Task, error) {
	if req.Text == nil && req.Status == nil {
		return nil, ErrEmptyUpdate
	}

	var text *string
	if req.Text != nil {
		trimmed := strings.TrimSpace(*req.Text)
		if trimmed == "" {
			return nil, ErrTextRequired
		}
		text = &trimmed
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	return s.repo.Update(ctx, scope, id, text, req.Status)
}

func (s *service) Delete(ctx context.Context, scope auth.MemberScope, id int) error {
	return s.repo.Delete(ctx, scope, id)
}
