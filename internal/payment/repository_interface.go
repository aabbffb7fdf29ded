package payment

import (
	"context"

	"fitlife/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, gym auth.AdminScope, attrs NewPayment) (*Payment, error)
	ListByGym(ctx context.Context, gym auth.AdminScope) ([]Payment, error)
	GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Payment, error)
}
