// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between different failure
// scenarios. For example, ErrForbidden indicates that the current user
// is not authorized to perform an operation on a resource owned by
// someone else, while ErrConflict signals that an operation cannot
// proceed due to existing dependent records.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot be performed
// because of conflicting state. Handlers should translate this into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrVenueNotFound is returned when a venue does not exist or is not
// visible to the caller.
var ErrVenueNotFound = errors.New("venue not found")
