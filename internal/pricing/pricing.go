// Package pricing derives the amount charged for a booking from the
// room's hourly rate and the booked time range.
package pricing

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidRange = errors.New("end time must be after start time")

// Price bills the range [start, end) at hourlyRate, rounding the
// duration up to whole hours: a partial hour costs a full hour.
func Price(hourlyRate float64, start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, ErrInvalidRange
	}
	hours := math.Ceil(end.Sub(start).Hours())
	return hours * hourlyRate, nil
}
