package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/sepehrad/venue-reservation/internal/model"
)

// PricingRepo resolves pricing rules. Resolution is read-only and
// first-match-wins, most specific scope first: venue, then type, then
// global. Within a scope the most recently created active rule wins.
type PricingRepo struct {
    db *sql.DB
}

// NewPricingRepo returns a new PricingRepo bound to the given database.
func NewPricingRepo(db *sql.DB) *PricingRepo { return &PricingRepo{db: db} }

const pricingColumns = `id, scope, venue_type, venue_id, price_per_person_cents, is_active, created_at`

// ResolveForVenueTx picks the pricing rule applicable to a venue
// inside an existing transaction. Returns nil when no active rule
// matches at any scope; the fee then defaults to zero.
func (r *PricingRepo) ResolveForVenueTx(ctx context.Context, tx *sql.Tx, venue model.Venue) (*model.PricingRule, error) {
    if rule, err := r.lookupTx(ctx, tx,
        `WHERE scope = 'venue' AND venue_id = ? AND is_active = 1`, venue.ID); rule != nil || err != nil {
        return rule, err
    }
    if rule, err := r.lookupTx(ctx, tx,
        `WHERE scope = 'type' AND venue_type = ? AND is_active = 1`, venue.Type); rule != nil || err != nil {
        return rule, err
    }
    return r.lookupTx(ctx, tx, `WHERE scope = 'global' AND is_active = 1`)
}

// ResolveGlobalTx skips straight to the global lookup. Used when no
// venue context exists.
func (r *PricingRepo) ResolveGlobalTx(ctx context.Context, tx *sql.Tx) (*model.PricingRule, error) {
    return r.lookupTx(ctx, tx, `WHERE scope = 'global' AND is_active = 1`)
}

func (r *PricingRepo) lookupTx(ctx context.Context, tx *sql.Tx, where string, args ...interface{}) (*model.PricingRule, error) {
    q := `SELECT ` + pricingColumns + ` FROM pricing_rules ` + where + ` ORDER BY id DESC LIMIT 1`
    var rule model.PricingRule
    var venueType sql.NullString
    var venueID sql.NullInt64
    err := tx.QueryRowContext(ctx, q, args...).Scan(
        &rule.ID, &rule.Scope, &venueType, &venueID,
        &rule.PricePerPersonCents, &rule.IsActive, &rule.CreatedAt,
    )
    if errors.Is(err, sql.ErrNoRows) {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    if venueType.Valid {
        vt := venueType.String
        rule.VenueType = &vt
    }
    if venueID.Valid {
        vid := uint64(venueID.Int64)
        rule.VenueID = &vid
    }
    return &rule, nil
}
