package member

import (
	"context"

	"fitlife/internal/auth"
)

// Repository is gym-scoped for everything an admin does. FindByEmail and
// FindByID exist only for login and session resolution.
type Repository interface {
	Create(ctx context.Context, gym auth.AdminScope, attrs NewMember) (*Member, error)
	ListByGym(ctx context.Context, gym auth.AdminScope) ([]Member, error)
	GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Member, error)
	Update(ctx context.Context, gym auth.AdminScope, id int, patch Patch) (*Member, error)
	Delete(ctx context.Context, gym auth.AdminScope, id int) error
	FindByEmail(ctx context.Context, email string) (*Member, error)
	FindByID(ctx context.Context, id int) (*Member, error)
	AddNotice(ctx context.Context, gym auth.AdminScope, id int, message string) (*Notice, error)
	ListNotices(ctx context.Context, scope auth.MemberScope) ([]Notice, error)
}
