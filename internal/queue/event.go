// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationEvent is published whenever the reservation flow emits a
// customer-facing notification: approval, rejection or a due reminder.
// It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type ReservationEvent struct {
    Type          string `json:"type"` // reservation_approved | reservation_rejected | reservation_reminder
    ReservationID uint64 `json:"reservation_id"`
    CustomerID    uint64 `json:"customer_id"`
    VenueID       uint64 `json:"venue_id"`
    Status        string `json:"status"`
    Title         string `json:"title"`
    Body          string `json:"body"`
    OccurredAt    string `json:"occurred_at"`
}
