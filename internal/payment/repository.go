package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitlife/internal/auth"
	"fitlife/internal/db"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, member_id, admin_id, gym_name, member_name, plan, amount, payment_date, receipt_number`

// The live member name wins over the snapshot taken at payment time; the
// snapshot remains once the member is deleted.
const selectPayments = `
	SELECT p.id, p.member_id, p.admin_id, p.gym_name,
		COALESCE(m.name, p.member_name) AS member_name,
		p.plan, p.amount, p.payment_date, p.receipt_number
	FROM payments p
	LEFT JOIN members m ON m.id = p.member_id AND m.admin_id = p.admin_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create records the payment and moves the member's last-payment pointer in
// one transaction. The member row is locked and must belong to gym.
func (r *repository) Create(ctx context.Context, gym auth.AdminScope, attrs NewPayment) (*Payment, error) {
	var p Payment

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var memberName string
		err := tx.GetContext(ctx, &memberName,
			`SELECT name FROM members WHERE id = $1 AND admin_id = $2 FOR UPDATE`,
			attrs.MemberID, gym.AdminID,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("lock member: %w", err)
		}

		insert := `
			INSERT INTO payments (member_id, admin_id, gym_name, member_name, plan, amount, receipt_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + paymentColumns
		err = tx.GetContext(ctx, &p, insert,
			attrs.MemberID, gym.AdminID, gym.GymName, memberName,
			attrs.Plan, attrs.Amount, attrs.ReceiptNumber,
		)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE members
			SET last_payment_date = $1, last_payment_id = $2, updated_at = NOW()
			WHERE id = $3 AND admin_id = $4`,
			p.PaymentDate, p.ID, attrs.MemberID, gym.AdminID,
		)
		if err != nil {
			return fmt.Errorf("update member last payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListByGym(ctx context.Context, gym auth.AdminScope) ([]Payment, error) {
	query := selectPayments + `
	WHERE p.admin_id = $1
	ORDER BY p.payment_date DESC, p.id DESC`

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, gym.AdminID); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Payment, error) {
	query := selectPayments + `
	WHERE p.id = $1 AND p.admin_id = $2`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id, gym.AdminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("select payment: %w", err)
	}
	return &p, nil
}
