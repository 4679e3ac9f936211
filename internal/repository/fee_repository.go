package repository

import (
    "context"
    "database/sql"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// FeeRepo writes the immutable fee snapshot taken at booking time.
// There is deliberately no update method; re-pricing a reservation is
// not supported.
type FeeRepo struct {
    db *sql.DB
}

// NewFeeRepo returns a new FeeRepo bound to the given database.
func NewFeeRepo(db *sql.DB) *FeeRepo { return &FeeRepo{db: db} }

// CreateTx inserts the fee snapshot within the provided transaction
// and populates the generated ID on the record.
func (r *FeeRepo) CreateTx(ctx context.Context, tx *sql.Tx, fee *model.ReservationFee) error {
    const q = `INSERT INTO reservation_fees
               (reservation_id, pricing_rule_id, price_per_person_cents, party_size, total_amount_cents, currency)
               VALUES (?, ?, ?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, q,
        fee.ReservationID, fee.PricingRuleID,
        fee.PricePerPersonCents, fee.PartySize, fee.TotalAmountCents, fee.Currency)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    fee.ID = uint64(id)
    return nil
}
