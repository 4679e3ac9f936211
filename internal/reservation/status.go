package reservation

import "time"

// Reservation statuses. The set is closed; no other values are valid.
const (
    StatusPending             = "pending"
    StatusApproved            = "approved"
    StatusRejected            = "rejected"
    StatusCancelledByCustomer = "cancelled_by_customer"
    StatusCancelledByVenue    = "cancelled_by_venue"
    StatusNoShow              = "no_show"
    StatusCompleted           = "completed"
)

// transitions encodes the state diagram. Statuses absent from the map
// are terminal. Every status change goes through CanTransition so an
// illegal transition never reaches the database.
var transitions = map[string][]string{
    StatusPending: {
        StatusApproved,
        StatusRejected,
        StatusCancelledByCustomer,
        StatusCancelledByVenue,
    },
    StatusApproved: {
        StatusCancelledByCustomer,
        StatusCancelledByVenue,
        StatusNoShow,
        StatusCompleted,
    },
}

// CanTransition reports whether the state diagram allows moving a
// reservation from one status to another.
func CanTransition(from, to string) bool {
    for _, t := range transitions[from] {
        if t == to {
            return true
        }
    }
    return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
    return len(transitions[status]) == 0
}

// BlockingStatuses returns the reservation statuses whose table
// assignments block a slot. Approved and completed reservations always
// hold their table; a pending reservation additionally holds it while
// a new booking is being checked.
func BlockingStatuses(includePending bool) []string {
    statuses := []string{StatusApproved, StatusCompleted}
    if includePending {
        statuses = append(statuses, StatusPending)
    }
    return statuses
}

// CustomerCancelCutoff is how long before the reservation start a
// customer may still cancel.
const CustomerCancelCutoff = time.Hour

// CanCustomerCancel reports whether a customer is allowed to cancel a
// reservation: the status must still be pending or approved and the
// current time must be more than one hour before the start.
func CanCustomerCancel(status string, startsAt, now time.Time) bool {
    if status != StatusPending && status != StatusApproved {
        return false
    }
    return now.Before(startsAt.Add(-CustomerCancelCutoff))
}
