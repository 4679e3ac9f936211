package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sepehrad/venue-reservation/internal/model"
	"github.com/sepehrad/venue-reservation/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES (?,?,?)",
		email, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// AdminUserRow is a user row decorated with strike and block state for
// the admin listing.
type AdminUserRow struct {
	ID               uint64  `json:"id"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	IsActive         bool    `json:"is_active"`
	StrikeCount      uint32  `json:"strike_count"`
	BlockLevel       *string `json:"block_level,omitempty"`
	BlockedUntil     *string `json:"blocked_until,omitempty"`
}

// ListWithBlockState returns users together with their strike count
// and the newest active block, newest user first.
func (r *UserRepo) ListWithBlockState(ctx context.Context, limit, offset int) ([]AdminUserRow, error) {
	const q = `SELECT u.id, u.email, u.role, u.is_active,
	                  (SELECT COUNT(*) FROM user_strikes s WHERE s.user_id = u.id),
	                  b.level, b.blocked_until
	           FROM users u
	           LEFT JOIN user_blocks b ON b.id = (
	               SELECT b2.id FROM user_blocks b2
	               WHERE b2.user_id = u.id AND b2.is_active = 1
	               ORDER BY b2.id DESC LIMIT 1
	           )
	           ORDER BY u.id DESC
	           LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]AdminUserRow, 0)
	for rows.Next() {
		var row AdminUserRow
		var level sql.NullString
		var until sql.NullTime
		if err := rows.Scan(&row.ID, &row.Email, &row.Role, &row.IsActive, &row.StrikeCount, &level, &until); err != nil {
			return nil, err
		}
		if level.Valid {
			lv := level.String
			row.BlockLevel = &lv
		}
		if until.Valid {
			iso := until.Time.UTC().Format(time.RFC3339)
			row.BlockedUntil = &iso
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
