package booking

import "errors"

var (
	ErrInvalidRange      = errors.New("end time must be after start time")
	ErrNotFound          = errors.New("booking not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrRoomInactive      = errors.New("room is not active")
	ErrConflict          = errors.New("room is already booked for this time")
	ErrInvalidStatus     = errors.New("unknown status value")
	ErrInvalidTransition = errors.New("illegal status transition")
)
