package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitlife/internal/auth"

	"github.com/jmoiron/sqlx"
)

const reminderColumns = `id, member_id, message, due_date, created_at, seen`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts only when the member belongs to gym.
func (r *repository) Create(ctx context.Context, gym auth.AdminScope, memberID int, message string, dueDate time.Time) (*Reminder, error) {
	query := `
		INSERT INTO reminders (member_id, message, due_date)
		SELECT id, $3, $4 FROM members WHERE id = $1 AND admin_id = $2
		RETURNING ` + reminderColumns

	var rem Reminder
	err := r.db.GetContext(ctx, &rem, query, memberID, gym.AdminID, message, dueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	return &rem, nil
}

func (r *repository) ListForMember(ctx context.Context, scope auth.MemberScope) ([]Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`

	reminders := []Reminder{}
	if err := r.db.SelectContext(ctx, &reminders, query, scope.MemberID); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (r *repository) MarkSeen(ctx context.Context, scope auth.MemberScope, id int) (*Reminder, error) {
	query := `
		UPDATE reminders SET seen = TRUE
		WHERE id = $1 AND member_id = $2
		RETURNING ` + reminderColumns

	var rem Reminder
	err := r.db.GetContext(ctx, &rem, query, id, scope.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("mark reminder seen: %w", err)
	}
	return &rem, nil
}

func (r *repository) Delete(ctx context.Context, scope auth.MemberScope, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1 AND member_id = $2`, id, scope.MemberID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReminderNotFound
	}
	return nil
}
