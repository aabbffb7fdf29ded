package announcement

import (
	"context"

	"fitlife/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, gym auth.AdminScope, message string) (*Announcement, error)
	ListByGym(ctx context.Context, gym auth.AdminScope) ([]Announcement, error)
	Delete(ctx context.Context, gym auth.AdminScope, id int) error
}
