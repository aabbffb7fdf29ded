package reminder

import (
	"context"
	"time"

	"fitlife/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, gym auth.AdminScope, memberID int, message string, dueDate time.Time) (*Reminder, error)
	ListForMember(ctx context.Context, scope auth.MemberScope) ([]Reminder, error)
	MarkSeen(ctx context.Context, scope auth.MemberScope, id int) (*Reminder, error)
	Delete(ctx context.Context, scope auth.MemberScope, id int) error
}
