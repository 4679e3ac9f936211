package model

import "time"

// Notification types emitted by the reservation flow.
const (
    NotificationReservationApproved = "reservation_approved"
    NotificationReservationRejected = "reservation_rejected"
    NotificationReservationReminder = "reservation_reminder"
)

// Notification is a message queued for a user.  Delivery mechanics
// (push, email, polling) live outside this service; rows are only
// written here and listed back to their owner.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – recipient of the notification.
//  Type      – machine-readable type tag.
//  Title     – short human-readable title.
//  Body      – message body.
//  DataJSON  – structured payload serialized as JSON.
//  CreatedAt – creation timestamp.
type Notification struct {
    ID        uint64    // notifications.id
    UserID    uint64    // notifications.user_id
    Type      string    // notifications.type
    Title     string    // notifications.title
    Body      string    // notifications.body
    DataJSON  []byte    // notifications.data_json (nullable)
    CreatedAt time.Time // notifications.created_at
}
