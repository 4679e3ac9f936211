package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// StrikeRepo maintains the append-only infraction ledger and the
// block records derived from it. The strike count is always computed
// by aggregation over user_strikes, never cached on the user row.
type StrikeRepo struct {
    db *sql.DB
}

// NewStrikeRepo returns a new StrikeRepo bound to the given database.
func NewStrikeRepo(db *sql.DB) *StrikeRepo { return &StrikeRepo{db: db} }

// LockUserTx takes a row lock on the user so concurrent no-show
// transitions against the same customer serialize for the rest of the
// transaction.
func (r *StrikeRepo) LockUserTx(ctx context.Context, tx *sql.Tx, userID uint64) error {
    var id uint64
    return tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ? FOR UPDATE`, userID).Scan(&id)
}

// AddStrikeTx appends one infraction to the ledger.
func (r *StrikeRepo) AddStrikeTx(ctx context.Context, tx *sql.Tx, userID uint64, reservationID, venueID *uint64) error {
    _, err := tx.ExecContext(ctx,
        `INSERT INTO user_strikes (user_id, reservation_id, venue_id) VALUES (?, ?, ?)`,
        userID, reservationID, venueID)
    return err
}

// CountByUserTx returns the user's total strike count within the
// transaction, including any strike appended earlier in it.
func (r *StrikeRepo) CountByUserTx(ctx context.Context, tx *sql.Tx, userID uint64) (int, error) {
    var count int
    err := tx.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM user_strikes WHERE user_id = ?`, userID).Scan(&count)
    return count, err
}

const blockColumns = `id, user_id, level, reason, blocked_until, is_active, created_at`

func scanBlock(scan func(dest ...interface{}) error) (*model.UserBlock, error) {
    var b model.UserBlock
    var until sql.NullTime
    err := scan(&b.ID, &b.UserID, &b.Level, &b.Reason, &until, &b.IsActive, &b.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    if until.Valid {
        u := until.Time.UTC()
        b.BlockedUntil = &u
    }
    return &b, nil
}

// CurrentBlockTx returns the newest active block for the user within
// the transaction, or nil when none exists. Expired temporary blocks
// are returned as-is; the caller decides whether they still bind.
func (r *StrikeRepo) CurrentBlockTx(ctx context.Context, tx *sql.Tx, userID uint64) (*model.UserBlock, error) {
    return scanBlock(tx.QueryRowContext(ctx,
        `SELECT `+blockColumns+` FROM user_blocks
         WHERE user_id = ? AND is_active = 1 ORDER BY id DESC LIMIT 1`, userID).Scan)
}

// CreateBlockTx records an escalation. Earlier block rows stay in
// place for the audit trail; CurrentBlockTx always reads the newest.
func (r *StrikeRepo) CreateBlockTx(ctx context.Context, tx *sql.Tx, userID uint64, level, reason string, until *time.Time) error {
    var untilStr *string
    if until != nil {
        s := until.UTC().Format("2006-01-02 15:04:05")
        untilStr = &s
    }
    _, err := tx.ExecContext(ctx,
        `INSERT INTO user_blocks (user_id, level, reason, blocked_until) VALUES (?, ?, ?, ?)`,
        userID, level, reason, untilStr)
    return err
}

// IsBlocked reports whether the user is currently banned from
// booking: a permanent block, or a temporary one whose expiry is
// still in the future. Expired blocks need no clearing; they simply
// stop matching.
func (r *StrikeRepo) IsBlocked(ctx context.Context, userID uint64, now time.Time) (bool, error) {
    var one int
    err := r.db.QueryRowContext(ctx,
        `SELECT 1 FROM user_blocks
         WHERE user_id = ? AND is_active = 1
           AND (level = 'permanent' OR blocked_until > ?)
         LIMIT 1`,
        userID, now.UTC().Format("2006-01-02 15:04:05")).Scan(&one)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}
