package agenda

import "time"

// AgendaBooking is the slice of a booking the TV display needs.
type AgendaBooking struct {
	ID         int64     `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ClientName string    `json:"client_name"`
	RoomName   string    `json:"room_name"`
	Status     string    `json:"status"`
}

// AgendaDay groups one calendar date's bookings, start-ascending, under
// a human label ("Hoje", "Amanhã", or weekday + date).
type AgendaDay struct {
	Date     string          `json:"date"`
	Label    string          `json:"label"`
	Bookings []AgendaBooking `json:"bookings"`
}

// Messages pushed to connected displays.
type AgendaMessage struct {
	Type string      `json:"type"`
	Days []AgendaDay `json:"days,omitempty"`
	Time string      `json:"time,omitempty"`
}

func NewAgendaEvent(days []AgendaDay) *AgendaMessage {
	return &AgendaMessage{Type: "agenda", Days: days}
}

func NewClockEvent(now time.Time) *AgendaMessage {
	return &AgendaMessage{Type: "clock", Time: now.Format("15:04")}
}
