package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// VenueRepo provides data access to the venues table. The booking
// core only reads active venues; creation and the admin listing back
// the catalog endpoints.
type VenueRepo struct {
    db *sql.DB
}

// NewVenueRepo returns a new VenueRepo bound to the given database.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions
// that span multiple repositories.
func (r *VenueRepo) DB() *sql.DB { return r.db }

const venueColumns = `id, vendor_id, name, type, address, is_active, created_at, updated_at`

func scanVenue(row *sql.Row) (model.Venue, error) {
    var v model.Venue
    var addr sql.NullString
    err := row.Scan(&v.ID, &v.VendorID, &v.Name, &v.Type, &addr, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
    if addr.Valid {
        a := addr.String
        v.Address = &a
    }
    return v, err
}

// Create inserts a venue for a vendor and returns its ID.
func (r *VenueRepo) Create(ctx context.Context, vendorID uint64, name, venueType string, address *string) (uint64, error) {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO venues (vendor_id, name, type, address) VALUES (?, ?, ?, ?)`,
        vendorID, name, venueType, address)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetActiveByID returns an active venue by id. Inactive or missing
// venues yield ErrVenueNotFound.
func (r *VenueRepo) GetActiveByID(ctx context.Context, id uint64) (model.Venue, error) {
    row := r.db.QueryRowContext(ctx,
        `SELECT `+venueColumns+` FROM venues WHERE id = ? AND is_active = 1`, id)
    v, err := scanVenue(row)
    if errors.Is(err, sql.ErrNoRows) {
        return v, ErrVenueNotFound
    }
    return v, err
}

// GetByIDForVendor returns a venue by id when it belongs to the given
// vendor, regardless of the active flag. Missing rows yield
// ErrVenueNotFound; rows owned by someone else yield ErrForbidden.
func (r *VenueRepo) GetByIDForVendor(ctx context.Context, id, vendorID uint64) (model.Venue, error) {
    row := r.db.QueryRowContext(ctx,
        `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
    v, err := scanVenue(row)
    if errors.Is(err, sql.ErrNoRows) {
        return v, ErrVenueNotFound
    }
    if err != nil {
        return v, err
    }
    if v.VendorID != vendorID {
        return model.Venue{}, ErrForbidden
    }
    return v, nil
}

// ListActive returns active venues for the public catalog, newest
// first.
func (r *VenueRepo) ListActive(ctx context.Context, limit, offset int) ([]model.Venue, error) {
    return r.list(ctx, `WHERE is_active = 1`, nil, limit, offset)
}

// ListByVendor returns a vendor's venues including inactive ones.
func (r *VenueRepo) ListByVendor(ctx context.Context, vendorID uint64, limit, offset int) ([]model.Venue, error) {
    return r.list(ctx, `WHERE vendor_id = ?`, []interface{}{vendorID}, limit, offset)
}

// ListAll returns every venue including inactive ones. Used by the
// admin listing only.
func (r *VenueRepo) ListAll(ctx context.Context, limit, offset int) ([]model.Venue, error) {
    return r.list(ctx, ``, nil, limit, offset)
}

func (r *VenueRepo) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]model.Venue, error) {
    q := `SELECT ` + venueColumns + ` FROM venues ` + where + ` ORDER BY id DESC LIMIT ? OFFSET ?`
    args = append(args, limit, offset)
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    venues := make([]model.Venue, 0)
    for rows.Next() {
        var v model.Venue
        var addr sql.NullString
        if err := rows.Scan(&v.ID, &v.VendorID, &v.Name, &v.Type, &addr, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
            return nil, err
        }
        if addr.Valid {
            a := addr.String
            v.Address = &a
        }
        venues = append(venues, v)
    }
    return venues, rows.Err()
}
