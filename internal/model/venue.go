package model

import "time"

// Venue types stored in the venues.type column.  Pricing rules with
// scope "type" match against these values.
const (
    VenueTypeRestaurant = "restaurant"
    VenueTypeCafe       = "cafe"
)

// Venue represents a bookable venue owned by a vendor.  Venues own
// zero or more tables and zero or more venue-scoped pricing rules.
// Inactive venues are hidden from customers and cannot take
// reservations.
//
// Fields:
//  ID        – primary key identifier.
//  VendorID  – user ID of the owning vendor.
//  Name      – display name of the venue.
//  Type      – venue type (restaurant or cafe).
//  Address   – optional street address.
//  IsActive  – whether the venue accepts bookings.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Venue struct {
    ID        uint64    // venues.id
    VendorID  uint64    // venues.vendor_id
    Name      string    // venues.name
    Type      string    // venues.type
    Address   *string   // venues.address (nullable)
    IsActive  bool      // venues.is_active
    CreatedAt time.Time // venues.created_at
    UpdatedAt time.Time // venues.updated_at
}

// VenueTable represents a physical table inside a venue.  Tables are
// soft-deactivated rather than deleted when a venue resizes its
// floor plan so that historical assignments keep their reference.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue that owns the table.
//  Name      – table label shown to the vendor (e.g. "T1").
//  Capacity  – number of seats; always positive.
//  IsActive  – whether the table participates in availability checks.
//  CreatedAt – creation timestamp.
type VenueTable struct {
    ID        uint64    // venue_tables.id
    VenueID   uint64    // venue_tables.venue_id
    Name      string    // venue_tables.name
    Capacity  uint32    // venue_tables.capacity
    IsActive  bool      // venue_tables.is_active
    CreatedAt time.Time // venue_tables.created_at
}
