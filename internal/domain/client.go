package domain

import "time"

// Client is the person or company a booking is made for. Contact
// fields are validated at intake only.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
