package repository

import (
    "context"
    "database/sql"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// TableRepo provides data access to the venue_tables table. The
// availability engine reads candidate tables through the Tx variant so
// that the rows stay locked for the duration of the booking
// transaction.
type TableRepo struct {
    db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// Create inserts a table for a venue and returns its ID. Capacity must
// be positive; the handler validates before calling.
func (r *TableRepo) Create(ctx context.Context, venueID uint64, name string, capacity uint32) (uint64, error) {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO venue_tables (venue_id, name, capacity) VALUES (?, ?, ?)`,
        venueID, name, capacity)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// Deactivate soft-deletes a table owned by the given vendor. Returns
// sql.ErrNoRows when the table does not exist and ErrForbidden when it
// belongs to a different vendor's venue.
func (r *TableRepo) Deactivate(ctx context.Context, tableID, vendorID uint64) error {
    var actualVendorID uint64
    err := r.db.QueryRowContext(ctx,
        `SELECT v.vendor_id FROM venue_tables t JOIN venues v ON v.id = t.venue_id WHERE t.id = ?`,
        tableID).Scan(&actualVendorID)
    if err != nil {
        return err
    }
    if actualVendorID != vendorID {
        return ErrForbidden
    }
    _, err = r.db.ExecContext(ctx, `UPDATE venue_tables SET is_active = 0 WHERE id = ?`, tableID)
    return err
}

// ListByVenue returns all tables of a venue ordered by capacity.
func (r *TableRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.VenueTable, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, venue_id, name, capacity, is_active, created_at
         FROM venue_tables WHERE venue_id = ? ORDER BY capacity, id`, venueID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return scanTables(rows)
}

// CandidatesForBookingTx returns the venue's active tables with
// capacity >= partySize, ordered by capacity ascending so the smallest
// sufficient table is tried first. When lock is true the rows are
// read FOR UPDATE, serializing concurrent bookers against the same
// venue for the remainder of the transaction.
func (r *TableRepo) CandidatesForBookingTx(ctx context.Context, tx *sql.Tx, venueID uint64, partySize uint32, lock bool) ([]model.VenueTable, error) {
    q := `SELECT id, venue_id, name, capacity, is_active, created_at
          FROM venue_tables
          WHERE venue_id = ? AND is_active = 1 AND capacity >= ?
          ORDER BY capacity, id`
    if lock {
        q += ` FOR UPDATE`
    }
    rows, err := tx.QueryContext(ctx, q, venueID, partySize)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return scanTables(rows)
}

func scanTables(rows *sql.Rows) ([]model.VenueTable, error) {
    tables := make([]model.VenueTable, 0)
    for rows.Next() {
        var t model.VenueTable
        if err := rows.Scan(&t.ID, &t.VenueID, &t.Name, &t.Capacity, &t.IsActive, &t.CreatedAt); err != nil {
            return nil, err
        }
        tables = append(tables, t)
    }
    return tables, rows.Err()
}
