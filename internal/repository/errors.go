// Package repository persists rooms, clients, bookings and admin users
// with gorm. Sentinel errors defined here let services distinguish
// storage outcomes without depending on driver error types; record
// lookups that find nothing return gorm.ErrRecordNotFound.
package repository

import "errors"

// ErrOverlap is returned when a booking write would leave two
// non-cancelled bookings on the same room with intersecting intervals.
var ErrOverlap = errors.New("overlapping booking exists for this room")

// ErrInUse is returned when deleting a room or client that is still
// referenced by bookings. Deactivation is the supported path for rooms.
var ErrInUse = errors.New("record is referenced by bookings")
