package admin

import (
	"context"

	"fitlife/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, attrs NewAdmin) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByID(ctx context.Context, id int) (*Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error)
}
