package model

import "time"

// Pricing rule scopes ordered by specificity: venue beats type beats
// global.  Resolution picks the most specific active rule.
const (
    PricingScopeGlobal = "global"
    PricingScopeType   = "type"
    PricingScopeVenue  = "venue"
)

// PricingRule defines a price-per-person for a scope of venues.  A
// venue-scoped rule references a single venue, a type-scoped rule
// carries a venue type, and a global rule applies everywhere.
//
// Fields:
//  ID                  – primary key identifier.
//  Scope               – rule scope (global, type or venue).
//  VenueType           – venue type filter for type-scoped rules.
//  VenueID             – venue reference for venue-scoped rules.
//  PricePerPersonCents – price per guest in cents.
//  IsActive            – whether the rule participates in resolution.
//  CreatedAt           – creation timestamp.
type PricingRule struct {
    ID                  uint64    // pricing_rules.id
    Scope               string    // pricing_rules.scope
    VenueType           *string   // pricing_rules.venue_type (nullable)
    VenueID             *uint64   // pricing_rules.venue_id (nullable)
    PricePerPersonCents uint32    // pricing_rules.price_per_person_cents
    IsActive            bool      // pricing_rules.is_active
    CreatedAt           time.Time // pricing_rules.created_at
}
