// Package agenda projects upcoming bookings for the unattended TV
// display: a seven-day, date-grouped view of pending and confirmed
// bookings, refreshed periodically and pushed to connected displays.
// The projection is read-only; it never touches ledger state.
package agenda

import (
	"context"
	"fmt"
	"time"

	"meetspace/internal/domain"
)

type BookingRepository interface {
	ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Upcoming projects the window [start-of-day(now), +7 days), grouped by
// the calendar date of each booking's start, ascending within groups.
// Completed and cancelled bookings never appear.
func (s *Service) Upcoming(ctx context.Context, now time.Time) ([]AgendaDay, error) {
	from := startOfDay(now)
	to := from.AddDate(0, 0, 7)

	rows, err := s.bookings.ListUpcoming(ctx, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]AgendaDay, 0)
	for _, b := range rows {
		date := b.StartTime.Format("2006-01-02")
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, AgendaDay{
				Date:     date,
				Label:    dateLabel(startOfDay(b.StartTime), from),
				Bookings: make([]AgendaBooking, 0, 1),
			})
		}

		entry := AgendaBooking{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    string(b.Status),
		}
		if b.Client != nil {
			entry.ClientName = b.Client.Name
		}
		if b.Room != nil {
			entry.RoomName = b.Room.Name
		}

		last := len(days) - 1
		days[last].Bookings = append(days[last].Bookings, entry)
	}

	return days, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdaysPT = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// dateLabel renders the day header the way the display shows it.
func dateLabel(date, today time.Time) string {
	switch {
	case date.Equal(today):
		return "Hoje"
	case date.Equal(today.AddDate(0, 0, 1)):
		return "Amanhã"
	default:
		return fmt.Sprintf("%s, %s", weekdaysPT[date.Weekday()], date.Format("02/01"))
	}
}
