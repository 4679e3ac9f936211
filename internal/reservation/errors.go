// Package reservation implements the table-allocation and reservation
// state-machine core: conflict detection, the transactional booking and
// approval protocol, status transitions with audit history, pricing
// resolution and the strike/blocking policy.
package reservation

import "errors"

// ErrNotFound is returned when a referenced venue or reservation does
// not exist, or does not belong to the acting vendor or customer.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrBlocked is returned when a blocked customer attempts to create a
// reservation. Handlers should translate this into an HTTP 403
// response.
var ErrBlocked = errors.New("customer is blocked from booking")

// ErrNoTableAvailable is returned when no table can seat the party for
// the requested slot. The surrounding transaction is rolled back in
// full; handlers should translate this into an HTTP 409 response.
var ErrNoTableAvailable = errors.New("no available table for this reservation")

// ErrInvalidTransition is returned when a status change is not allowed
// by the reservation state diagram.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrCannotCancel is returned when a cancellation is refused, either
// because the reservation is in a non-cancellable status or because
// the customer cutoff has passed.
var ErrCannotCancel = errors.New("reservation cannot be cancelled")

// ErrValidation is returned for malformed input (bad date or time
// format, party size out of range, missing rejection reason) before
// any transaction begins.
var ErrValidation = errors.New("validation failed")
