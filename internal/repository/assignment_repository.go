package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// AssignmentRepo provides data access to reservation_table_assignments.
// The unique key on reservation_id guarantees at most one table per
// reservation; the repository relies on it rather than re-checking.
type AssignmentRepo struct {
    db *sql.DB
}

// NewAssignmentRepo returns a new AssignmentRepo bound to the given database.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

// CreateTx links a reservation to a table within the provided
// transaction. A duplicate reservation_id surfaces as ErrConflict.
func (r *AssignmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, reservationID, tableID uint64) error {
    _, err := tx.ExecContext(ctx,
        `INSERT INTO reservation_table_assignments (reservation_id, venue_table_id) VALUES (?, ?)`,
        reservationID, tableID)
    if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
        return ErrConflict
    }
    return err
}

// TableForReservationTx returns the table currently assigned to a
// reservation, or nil when none is.
func (r *AssignmentRepo) TableForReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) (*model.VenueTable, error) {
    const q = `SELECT t.id, t.venue_id, t.name, t.capacity, t.is_active, t.created_at
               FROM reservation_table_assignments a
               JOIN venue_tables t ON t.id = a.venue_table_id
               WHERE a.reservation_id = ?`
    var t model.VenueTable
    err := tx.QueryRowContext(ctx, q, reservationID).Scan(
        &t.ID, &t.VenueID, &t.Name, &t.Capacity, &t.IsActive, &t.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &t, nil
}

// BlockingWindow is one existing assignment on a candidate table whose
// reservation is in a slot-blocking status. The date and time strings
// carry the wire formats used across the reservations table.
type BlockingWindow struct {
    TableID         uint64
    ReservationDate string
    ReservationTime string
}

// BlockingForTablesTx fetches the assignments on the given tables
// whose owning reservation blocks a slot at this venue. Slot-blocking
// statuses are approved and completed, plus pending when checking a
// new booking. When lock is true the assignment rows are read FOR
// UPDATE so concurrent bookings against the same tables serialize.
func (r *AssignmentRepo) BlockingForTablesTx(ctx context.Context, tx *sql.Tx, venueID uint64, tableIDs []uint64, statuses []string, lock bool) ([]BlockingWindow, error) {
    if len(tableIDs) == 0 || len(statuses) == 0 {
        return []BlockingWindow{}, nil
    }
    args := make([]interface{}, 0, len(tableIDs)+len(statuses)+1)
    tablePh := make([]string, len(tableIDs))
    for i, id := range tableIDs {
        tablePh[i] = "?"
        args = append(args, id)
    }
    args = append(args, venueID)
    statusPh := make([]string, len(statuses))
    for i, s := range statuses {
        statusPh[i] = "?"
        args = append(args, s)
    }
    q := `SELECT a.venue_table_id,
                 DATE_FORMAT(res.reservation_date, '%Y-%m-%d'),
                 TIME_FORMAT(res.reservation_time, '%H:%i:%s')
          FROM reservation_table_assignments a
          JOIN reservations res ON res.id = a.reservation_id
          WHERE a.venue_table_id IN (` + strings.Join(tablePh, ",") + `)
            AND res.venue_id = ?
            AND res.status IN (` + strings.Join(statusPh, ",") + `)`
    if lock {
        q += ` FOR UPDATE`
    }
    rows, err := tx.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    windows := make([]BlockingWindow, 0)
    for rows.Next() {
        var w BlockingWindow
        if err := rows.Scan(&w.TableID, &w.ReservationDate, &w.ReservationTime); err != nil {
            return nil, err
        }
        windows = append(windows, w)
    }
    return windows, rows.Err()
}
