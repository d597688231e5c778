package catalog

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation error")

	// ErrInUse rejects deleting a room or client that bookings still
	// reference. Rooms should be deactivated instead.
	ErrInUse = errors.New("record is referenced by bookings")
)
