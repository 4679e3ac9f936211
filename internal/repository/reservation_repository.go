package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations and their
// append-only status history. The booking and approval protocols run
// through the Tx variants inside a single transaction; plain methods
// back the listing endpoints. All timestamps are stored in UTC.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so services can open transactions
// spanning multiple repositories.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// reservationColumns formats the date and time columns explicitly so
// scans are driver-agnostic regardless of the parseTime DSN flag.
const reservationColumns = `r.id, r.code, r.customer_id, r.venue_id,
       DATE_FORMAT(r.reservation_date, '%Y-%m-%d'),
       TIME_FORMAT(r.reservation_time, '%H:%i:%s'),
       r.party_size, r.status, r.rejection_reason, r.created_at, r.updated_at`

func scanReservation(scan func(dest ...interface{}) error) (model.Reservation, error) {
    var res model.Reservation
    var reason sql.NullString
    err := scan(&res.ID, &res.Code, &res.CustomerID, &res.VenueID,
        &res.ReservationDate, &res.ReservationTime,
        &res.PartySize, &res.Status, &reason, &res.CreatedAt, &res.UpdatedAt)
    if reason.Valid {
        rr := reason.String
        res.RejectionReason = &rr
    }
    return res, err
}

// CreateTx inserts a new pending reservation within the scope of an
// existing transaction and populates the generated ID and timestamps
// on the provided record. The caller must commit or roll back.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    const q = `INSERT INTO reservations
               (code, customer_id, venue_id, reservation_date, reservation_time, party_size, status)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, q,
        res.Code, res.CustomerID, res.VenueID,
        res.ReservationDate, res.ReservationTime, res.PartySize, res.Status)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    res.ID = uint64(id)
    // Query back the full row to populate timestamps and defaults.
    created, err := scanReservation(tx.QueryRowContext(ctx,
        `SELECT `+reservationColumns+` FROM reservations r WHERE r.id = ?`, res.ID).Scan)
    if err != nil {
        return err
    }
    *res = created
    return nil
}

// CodeExistsTx reports whether a reservation code is already taken.
func (r *ReservationRepo) CodeExistsTx(ctx context.Context, tx *sql.Tx, code string) (bool, error) {
    var one int
    err := tx.QueryRowContext(ctx, `SELECT 1 FROM reservations WHERE code = ? LIMIT 1`, code).Scan(&one)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// GetForVendorTx returns a reservation by id when its venue belongs to
// the given vendor. Reservations of other vendors are indistinguishable
// from missing ones: both yield sql.ErrNoRows. When lock is true the
// reservation row is read FOR UPDATE for the rest of the transaction.
func (r *ReservationRepo) GetForVendorTx(ctx context.Context, tx *sql.Tx, reservationID, vendorID uint64, lock bool) (model.Reservation, error) {
    q := `SELECT ` + reservationColumns + `
          FROM reservations r
          WHERE r.id = ? AND r.venue_id IN (SELECT id FROM venues WHERE vendor_id = ?)`
    if lock {
        q += ` FOR UPDATE`
    }
    return scanReservation(tx.QueryRowContext(ctx, q, reservationID, vendorID).Scan)
}

// GetForCustomerTx returns a reservation by id when it belongs to the
// given customer; missing and foreign rows both yield sql.ErrNoRows.
func (r *ReservationRepo) GetForCustomerTx(ctx context.Context, tx *sql.Tx, reservationID, customerID uint64, lock bool) (model.Reservation, error) {
    q := `SELECT ` + reservationColumns + `
          FROM reservations r
          WHERE r.id = ? AND r.customer_id = ?`
    if lock {
        q += ` FOR UPDATE`
    }
    return scanReservation(tx.QueryRowContext(ctx, q, reservationID, customerID).Scan)
}

// UpdateStatusTx sets the status and rejection reason of a
// reservation. The reason must be non-nil only for rejections; passing
// nil clears any previous reason.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, reservationID uint64, status string, reason *string) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE reservations SET status = ?, rejection_reason = ? WHERE id = ?`,
        status, reason, reservationID)
    return err
}

// AppendHistoryTx appends one row to the reservation status log.
// History rows are never updated or deleted.
func (r *ReservationRepo) AppendHistoryTx(ctx context.Context, tx *sql.Tx, reservationID uint64, oldStatus *string, newStatus string, changedBy *uint64) error {
    _, err := tx.ExecContext(ctx,
        `INSERT INTO reservation_status_history (reservation_id, old_status, new_status, changed_by_user_id)
         VALUES (?, ?, ?, ?)`,
        reservationID, oldStatus, newStatus, changedBy)
    return err
}

// HistoryByReservation returns the transition log for a reservation in
// chronological order.
func (r *ReservationRepo) HistoryByReservation(ctx context.Context, reservationID uint64) ([]model.StatusHistory, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, reservation_id, old_status, new_status, changed_by_user_id, created_at
         FROM reservation_status_history WHERE reservation_id = ? ORDER BY id`, reservationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    entries := make([]model.StatusHistory, 0)
    for rows.Next() {
        var h model.StatusHistory
        var old sql.NullString
        var changedBy sql.NullInt64
        if err := rows.Scan(&h.ID, &h.ReservationID, &old, &h.NewStatus, &changedBy, &h.CreatedAt); err != nil {
            return nil, err
        }
        if old.Valid {
            o := old.String
            h.OldStatus = &o
        }
        if changedBy.Valid {
            cb := uint64(changedBy.Int64)
            h.ChangedByUserID = &cb
        }
        entries = append(entries, h)
    }
    return entries, rows.Err()
}

// VenueSummary is the venue slice embedded in reservation listings.
type VenueSummary struct {
    ID      uint64  `json:"id"`
    Name    string  `json:"name"`
    Type    string  `json:"type"`
    Address *string `json:"address,omitempty"`
}

// CustomerSummary is the customer slice embedded in vendor listings.
type CustomerSummary struct {
    ID    uint64 `json:"id"`
    Email string `json:"email"`
}

// ReservationDetail is one row of a reservation listing. Customer is
// populated only for vendor and admin listings.
type ReservationDetail struct {
    ID              uint64           `json:"id"`
    Code            string           `json:"code"`
    ReservationDate string           `json:"reservation_date"`
    ReservationTime string           `json:"reservation_time"`
    PartySize       uint32           `json:"party_size"`
    Status          string           `json:"status"`
    RejectionReason *string          `json:"rejection_reason,omitempty"`
    Venue           VenueSummary     `json:"venue"`
    Customer        *CustomerSummary `json:"customer,omitempty"`
}

// ListByCustomer returns the customer's reservations with venue
// summaries, newest first.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64, limit, offset int) ([]ReservationDetail, error) {
    return r.listDetails(ctx, `WHERE r.customer_id = ?`, false, customerID, limit, offset)
}

// ListByVendor returns reservations at venues owned by the vendor,
// including customer summaries, newest first.
func (r *ReservationRepo) ListByVendor(ctx context.Context, vendorID uint64, limit, offset int) ([]ReservationDetail, error) {
    return r.listDetails(ctx, `WHERE v.vendor_id = ?`, true, vendorID, limit, offset)
}

// ListAll returns every reservation for the admin overview.
func (r *ReservationRepo) ListAll(ctx context.Context, limit, offset int) ([]ReservationDetail, error) {
    return r.listDetails(ctx, ``, true, 0, limit, offset)
}

func (r *ReservationRepo) listDetails(ctx context.Context, where string, withCustomer bool, scopeID uint64, limit, offset int) ([]ReservationDetail, error) {
    q := `SELECT r.id, r.code,
                 DATE_FORMAT(r.reservation_date, '%Y-%m-%d'),
                 TIME_FORMAT(r.reservation_time, '%H:%i:%s'),
                 r.party_size, r.status, r.rejection_reason,
                 v.id, v.name, v.type, v.address,
                 u.id, u.email
          FROM reservations r
          JOIN venues v ON v.id = r.venue_id
          JOIN users u ON u.id = r.customer_id
          ` + where + `
          ORDER BY r.id DESC
          LIMIT ? OFFSET ?`
    args := make([]interface{}, 0, 3)
    if strings.Contains(where, "?") {
        args = append(args, scopeID)
    }
    args = append(args, limit, offset)
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    details := make([]ReservationDetail, 0)
    for rows.Next() {
        var d ReservationDetail
        var reason sql.NullString
        var addr sql.NullString
        var cust CustomerSummary
        if err := rows.Scan(
            &d.ID, &d.Code, &d.ReservationDate, &d.ReservationTime,
            &d.PartySize, &d.Status, &reason,
            &d.Venue.ID, &d.Venue.Name, &d.Venue.Type, &addr,
            &cust.ID, &cust.Email,
        ); err != nil {
            return nil, err
        }
        if reason.Valid {
            rr := reason.String
            d.RejectionReason = &rr
        }
        if addr.Valid {
            a := addr.String
            d.Venue.Address = &a
        }
        if withCustomer {
            c := cust
            d.Customer = &c
        }
        details = append(details, d)
    }
    return details, rows.Err()
}
