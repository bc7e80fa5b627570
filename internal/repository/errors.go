// Package repository defines error types that are reused across every
// store implementation.  These sentinel values allow higher layers such as
// the booking service and HTTP handlers to distinguish between failure
// scenarios without knowing which backend produced them.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a venue, artist or show id does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidReference is returned when a show names an artist or venue
// that does not exist at the moment the show is written.
var ErrInvalidReference = errors.New("invalid reference")

// ErrConflict is returned when a write cannot be applied because of
// conflicting concurrent state, for example a deadlock between a cascade
// delete and a show insert.  Handlers should translate this into an HTTP
// 409 response; the caller may retry.
var ErrConflict = errors.New("conflict")

// ReferenceError names the foreign key that failed a reference check.
// errors.Is(err, ErrInvalidReference) holds for it.
type ReferenceError struct {
	Field string // "artist_id" or "venue_id"
	ID    uint64 // zero when the backend does not report it
}

func (e *ReferenceError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("invalid reference: %s does not exist", e.Field)
	}
	return fmt.Sprintf("invalid reference: %s %d does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrInvalidReference }
