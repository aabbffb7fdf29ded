package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitlife/internal/auth"
	"fitlife/internal/db"

	"github.com/jmoiron/sqlx"
)

const memberColumns = `id, admin_id, gym_name, name, email, phone, membership_type, join_date,
	expiry_date, password_hash, last_payment_date, last_payment_id, created_at, updated_at`

type repository struct {
	db    *sqlx.DB
	creds auth.Credentials
}

func NewRepository(db *sqlx.DB, creds auth.Credentials) Repository {
	return &repository{db: db, creds: creds}
}

func (r *repository) Create(ctx context.Context, gym auth.AdminScope, attrs NewMember) (*Member, error) {
	password := attrs.Password
	if password == "" {
		password = attrs.Phone
	}
	digest, err := r.creds.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO members (admin_id, gym_name, name, email, phone, membership_type, expiry_date, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + memberColumns

	var m Member
	err = r.db.GetContext(ctx, &m, query,
		gym.AdminID, gym.GymName, attrs.Name, attrs.Email, attrs.Phone,
		attrs.MembershipType, attrs.ExpiryDate, digest,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	return &m, nil
}

func (r *repository) ListByGym(ctx context.Context, gym auth.AdminScope) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE admin_id = $1
		ORDER BY created_at DESC, id DESC
	`

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, gym.AdminID); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *repository) GetByID(ctx context.Context, gym auth.AdminScope, id int) (*Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1 AND admin_id = $2`, id, gym.AdminID)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE email = $1`, email)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, args ...interface{}) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("select member: %w", err)
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, gym auth.AdminScope, id int, patch Patch) (*Member, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Email != nil {
		set("email", nullable(*patch.Email))
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.MembershipType != nil {
		set("membership_type", *patch.MembershipType)
	}
	if patch.ExpiryDate != nil {
		set("expiry_date", *patch.ExpiryDate)
	}
	if patch.Password != nil {
		digest, err := r.creds.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		set("password_hash", digest)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id, gym.AdminID)
	query := fmt.Sprintf(`
		UPDATE members SET %s
		WHERE id = $%d AND admin_id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args)-1, len(args), memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, gym auth.AdminScope, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1 AND admin_id = $2`, id, gym.AdminID)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *repository) AddNotice(ctx context.Context, gym auth.AdminScope, id int, message string) (*Notice, error) {
	query := `
		INSERT INTO member_notices (member_id, message)
		SELECT id, $3 FROM members WHERE id = $1 AND admin_id = $2
		RETURNING id, member_id, message, date, seen
	`

	var n Notice
	err := r.db.GetContext(ctx, &n, query, id, gym.AdminID, message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("insert notice: %w", err)
	}
	return &n, nil
}

func (r *repository) ListNotices(ctx context.Context, scope auth.MemberScope) ([]Notice, error) {
	query := `
		SELECT id, member_id, message, date, seen
		FROM member_notices
		WHERE member_id = $1
		ORDER BY date DESC, id DESC
	`

	notices := []Notice{}
	if err := r.db.SelectContext(ctx, &notices, query, scope.MemberID); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
