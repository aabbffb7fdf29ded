package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitlife/internal/auth"

	"github.com/jmoiron/sqlx"
)

const taskColumns = `id, member_id, text, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, scope auth.MemberScope, text, status string) (*Task, error) {
	query := `
		INSERT INTO tasks (member_id, text, status)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns

	var t Task
	if err := r.db.GetContext(ctx, &t, query, scope.MemberID, text, status); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context, scope auth.MemberScope) ([]Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`

	tasks := []Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, scope.MemberID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update keeps the stored value of any nil field.
func (r *repository) Update(ctx context.Context, scope auth.MemberScope, id int, text, status *string) (*Task, error) {
	query := `
		UPDATE tasks
		SET text = COALESCE($1, text), status = COALESCE($2, status)
		WHERE id = $3 AND member_id = $4
		RETURNING ` + taskColumns

	var t Task
	err := r.db.GetContext(ctx, &t, query, text, status, id, scope.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &t, nil
}

func (r *repository) Delete(ctx context.Context, scope auth.MemberScope, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND member_id = $2`, id, scope.MemberID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}
