package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// ReminderRepo provides data access to reservation_reminders. A
// reminder row is created exactly once at booking time; the dispatcher
// only flips sent_at, so a reminder can never be delivered twice.
type ReminderRepo struct {
    db *sql.DB
}

// NewReminderRepo returns a new ReminderRepo bound to the given database.
func NewReminderRepo(db *sql.DB) *ReminderRepo { return &ReminderRepo{db: db} }

// CreateTx inserts the reminder within the provided transaction and
// populates the generated ID on the record. Timestamps are stored as
// UTC DATETIME values.
func (r *ReminderRepo) CreateTx(ctx context.Context, tx *sql.Tx, rem *model.Reminder) error {
    result, err := tx.ExecContext(ctx,
        `INSERT INTO reservation_reminders (reservation_id, send_at) VALUES (?, ?)`,
        rem.ReservationID, rem.SendAt.UTC().Format("2006-01-02 15:04:05"))
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    rem.ID = uint64(id)
    return nil
}

// DueReminder is a reminder that is ready to dispatch, joined with
// the reservation fields the notification needs.
type DueReminder struct {
    ReminderID      uint64
    ReservationID   uint64
    CustomerID      uint64
    VenueID         uint64
    ReservationDate string
    ReservationTime string
}

// DueUnsent returns reminders whose send_at has arrived, that have not
// been sent, and whose reservation is still approved. Reservations
// that were cancelled or rejected after booking simply never match.
func (r *ReminderRepo) DueUnsent(ctx context.Context, now time.Time, limit int) ([]DueReminder, error) {
    const q = `SELECT m.id, m.reservation_id, res.customer_id, res.venue_id,
                      DATE_FORMAT(res.reservation_date, '%Y-%m-%d'),
                      TIME_FORMAT(res.reservation_time, '%H:%i:%s')
               FROM reservation_reminders m
               JOIN reservations res ON res.id = m.reservation_id
               WHERE m.sent_at IS NULL
                 AND m.send_at <= ?
                 AND res.status = 'approved'
               ORDER BY m.send_at
               LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, now.UTC().Format("2006-01-02 15:04:05"), limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    due := make([]DueReminder, 0)
    for rows.Next() {
        var d DueReminder
        if err := rows.Scan(&d.ReminderID, &d.ReservationID, &d.CustomerID, &d.VenueID,
            &d.ReservationDate, &d.ReservationTime); err != nil {
            return nil, err
        }
        due = append(due, d)
    }
    return due, rows.Err()
}

// MarkSent stamps a reminder as delivered. The sent_at IS NULL guard
// makes dispatch idempotent under concurrent scanners: only one of
// two racing updates reports an affected row.
func (r *ReminderRepo) MarkSent(ctx context.Context, reminderID uint64, sentAt time.Time) (bool, error) {
    result, err := r.db.ExecContext(ctx,
        `UPDATE reservation_reminders SET sent_at = ? WHERE id = ? AND sent_at IS NULL`,
        sentAt.UTC().Format("2006-01-02 15:04:05"), reminderID)
    if err != nil {
        return false, err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return false, err
    }
    return n > 0, nil
}
