package model

import "time"

// Reservation records a customer's booking of a table at a venue for
// a date and time.  The date and time columns are kept as strings in
// their wire formats (YYYY-MM-DD, HH:MM:SS); combine them with
// reservation.StartTime when a time.Time is needed.  Status values
// form a closed set governed by the reservation state machine.
//
// Fields:
//  ID              – primary key identifier.
//  Code            – unique human-readable 8-character code.
//  CustomerID      – user who made the reservation.
//  VenueID         – venue being reserved.
//  ReservationDate – reservation date (YYYY-MM-DD).
//  ReservationTime – reservation time (HH:MM:SS).
//  PartySize       – number of guests (1..50).
//  Status          – current state of the reservation.
//  RejectionReason – reason supplied on rejection, nil otherwise.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
    ID              uint64    // reservations.id
    Code            string    // reservations.code
    CustomerID      uint64    // reservations.customer_id
    VenueID         uint64    // reservations.venue_id
    ReservationDate string    // reservations.reservation_date
    ReservationTime string    // reservations.reservation_time
    PartySize       uint32    // reservations.party_size
    Status          string    // reservations.status
    RejectionReason *string   // reservations.rejection_reason (nullable)
    CreatedAt       time.Time // reservations.created_at
    UpdatedAt       time.Time // reservations.updated_at
}

// TableAssignment links a reservation to the table allocated for it.
// A reservation has at most one assignment, enforced by a unique key
// on reservation_id.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – reservation holding the table.
//  VenueTableID  – table allocated to the reservation.
//  AssignedAt    – when the allocation was made.
type TableAssignment struct {
    ID            uint64    // reservation_table_assignments.id
    ReservationID uint64    // reservation_table_assignments.reservation_id
    VenueTableID  uint64    // reservation_table_assignments.venue_table_id
    AssignedAt    time.Time // reservation_table_assignments.assigned_at
}

// ReservationFee is the immutable price snapshot taken when a
// reservation is created.  Re-pricing is not supported; the row is
// never updated.
//
// Fields:
//  ID                  – primary key identifier.
//  ReservationID       – reservation the fee belongs to.
//  PricingRuleID       – rule that produced the price, nil when none resolved.
//  PricePerPersonCents – price per guest at creation time.
//  PartySize           – party size the total was computed from.
//  TotalAmountCents    – price per person times party size.
//  Currency            – ISO currency code from configuration.
//  CreatedAt           – creation timestamp.
type ReservationFee struct {
    ID                  uint64    // reservation_fees.id
    ReservationID       uint64    // reservation_fees.reservation_id
    PricingRuleID       *uint64   // reservation_fees.pricing_rule_id (nullable)
    PricePerPersonCents uint32    // reservation_fees.price_per_person_cents
    PartySize           uint32    // reservation_fees.party_size
    TotalAmountCents    uint32    // reservation_fees.total_amount_cents
    Currency            string    // reservation_fees.currency
    CreatedAt           time.Time // reservation_fees.created_at
}

// StatusHistory is one row of the append-only reservation status
// log.  Rows are never mutated or deleted.
//
// Fields:
//  ID              – primary key identifier.
//  ReservationID   – reservation the transition belongs to.
//  OldStatus       – status before the transition, nil for the initial row.
//  NewStatus       – status after the transition.
//  ChangedByUserID – actor who performed the transition.
//  CreatedAt       – when the transition happened.
type StatusHistory struct {
    ID              uint64    // reservation_status_history.id
    ReservationID   uint64    // reservation_status_history.reservation_id
    OldStatus       *string   // reservation_status_history.old_status (nullable)
    NewStatus       string    // reservation_status_history.new_status
    ChangedByUserID *uint64   // reservation_status_history.changed_by_user_id (nullable)
    CreatedAt       time.Time // reservation_status_history.created_at
}

// Reminder schedules a courtesy notification ahead of a
// reservation's start time.  It is created once at booking time;
// SentAt stays nil until the dispatcher delivers it.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – reservation the reminder belongs to.
//  SendAt        – scheduled delivery time (start minus offset).
//  SentAt        – actual delivery time, nil until dispatched.
//  CreatedAt     – creation timestamp.
type Reminder struct {
    ID            uint64     // reservation_reminders.id
    ReservationID uint64     // reservation_reminders.reservation_id
    SendAt        time.Time  // reservation_reminders.send_at
    SentAt        *time.Time // reservation_reminders.sent_at (nullable)
    CreatedAt     time.Time  // reservation_reminders.created_at
}
