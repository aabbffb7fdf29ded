package announcement

import (
	"context"
	"fmt"

	"fitlife/internal/auth"

	"github.com/jmoiron/sqlx"
)

const announcementColumns = `id, admin_id, gym_name, message, date`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gym auth.AdminScope, message string) (*Announcement, error) {
	query := `
		INSERT INTO announcements (admin_id, gym_name, message)
		VALUES ($1, $2, $3)
		RETURNING ` + announcementColumns

	var a Announcement
	if err := r.db.GetContext(ctx, &a, query, gym.AdminID, gym.GymName, message); err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	return &a, nil
}

func (r *repository) ListByGym(ctx context.Context, gym auth.AdminScope) ([]Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE admin_id = $1
		ORDER BY date DESC, id DESC
	`

	announcements := []Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query, gym.AdminID); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

func (r *repository) Delete(ctx context.Context, gym auth.AdminScope, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1 AND admin_id = $2`, id, gym.AdminID)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}
