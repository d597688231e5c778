package booking

import "time"

type CreateBookingRequest struct {
	ClientID  int64     `json:"client_id" binding:"required"`
	RoomID    int64     `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

// UpdateBookingRequest is a partial change set; nil fields are left
// untouched.
type UpdateBookingRequest struct {
	ClientID      *int64     `json:"client_id"`
	RoomID        *int64     `json:"room_id"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Status        *string    `json:"status"`
	PaymentStatus *string    `json:"payment_status"`
	Notes         *string    `json:"notes"`
}

type ListBookingsQuery struct {
	Status   []string  `form:"status"`
	RoomID   int64     `form:"room_id"`
	ClientID int64     `form:"client_id"`
	From     time.Time `form:"from" time_format:"2006-01-02"`
	To       time.Time `form:"to" time_format:"2006-01-02"`
}
