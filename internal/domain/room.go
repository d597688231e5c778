package domain

import "time"

// Room is a bookable meeting room. Rooms referenced by bookings are
// never deleted; they are deactivated via IsActive instead.
type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	HourlyRate  float64   `json:"hourly_rate" validate:"required,gt=0"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
