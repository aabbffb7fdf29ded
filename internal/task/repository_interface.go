package task

import (
	"context"

	"fitlife/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, scope auth.MemberScope, text, status string) (*Task, error)
	List(ctx context.Context, scope auth.MemberScope) ([]Task, error)
	Update(ctx context.Context, scope auth.MemberScope, id int, text, status *string) (*Task, error)
	Delete(ctx context.Context, scope auth.MemberScope, id int) error
}
