package intake

import "time"

// IntakeRequest is the public reservation form. Visitors are not
// clients yet, so the form carries contact details instead of a client
// id.
type IntakeRequest struct {
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Company   string    `json:"company"`
	RoomID    int64     `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type IntakeResponse struct {
	BookingID   int64   `json:"booking_id"`
	ClientID    int64   `json:"client_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}
