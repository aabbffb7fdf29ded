package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitlife/internal/auth"
	"fitlife/internal/db"

	"github.com/jmoiron/sqlx"
)

const adminColumns = `id, email, password_hash, gym_name, gym_address, phone, created_at`

type repository struct {
	db    *sqlx.DB
	creds auth.Credentials
}

func NewRepository(db *sqlx.DB, creds auth.Credentials) Repository {
	return &repository{db: db, creds: creds}
}

func (r *repository) Create(ctx context.Context, attrs NewAdmin) (*Admin, error) {
	digest, err := r.creds.Hash(attrs.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO admins (email, password_hash, gym_name, gym_address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + adminColumns

	var a Admin
	err = r.db.GetContext(ctx, &a, query, attrs.Email, digest, attrs.GymName, attrs.GymAddress, attrs.Phone)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	return &a, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Admin, error) {
	return r.findOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, arg interface{}) (*Admin, error) {
	var a Admin
	err := r.db.GetContext(ctx, &a, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	return &a, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT 1 FROM admins WHERE email = $1`, email)
}

func (r *repository) Dashboard(ctx context.Context, gym auth.AdminScope) (*Dashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members WHERE admin_id = $1) AS members,
			(SELECT COUNT(*) FROM payments WHERE admin_id = $1) AS payments,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE admin_id = $1) AS payments_total,
			(SELECT COUNT(*) FROM announcements WHERE admin_id = $1) AS announcements
	`

	var d Dashboard
	if err := r.db.GetContext(ctx, &d, query, gym.AdminID); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	d.GymName = gym.GymName
	return &d, nil
}
