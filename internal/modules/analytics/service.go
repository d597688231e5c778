// Package analytics is a read-only aggregation layer over the booking
// ledger: revenue totals and monthly breakdowns for paid bookings. It
// never writes booking state.
package analytics

import (
	"context"
	"errors"
	"time"

	"meetspace/internal/domain"
)

var ErrInvalidPeriod = errors.New("unknown aggregation period")

type BookingRepository interface {
	ListPaidCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Aggregate sums paid bookings created inside the period containing
// now. The yearly period additionally buckets the same set into the
// twelve calendar months, reporting empty months as zero.
func (s *Service) Aggregate(ctx context.Context, period Period, now time.Time) (*RevenueSummary, error) {
	var from, to time.Time
	switch period {
	case PeriodMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case PeriodYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default:
		return nil, ErrInvalidPeriod
	}

	rows, err := s.bookings.ListPaidCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{TotalBookings: len(rows)}
	for _, b := range rows {
		summary.TotalRevenue += b.TotalAmount
	}
	if summary.TotalBookings > 0 {
		summary.AvgBookingValue = summary.TotalRevenue / float64(summary.TotalBookings)
	}

	if period == PeriodYear {
		summary.MonthlyBreakdown = monthlyBuckets(rows)
	}

	return summary, nil
}

func monthlyBuckets(rows []domain.Booking) []MonthlyRevenue {
	buckets := make([]MonthlyRevenue, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, b := range rows {
		i := int(b.CreatedAt.Month()) - 1
		buckets[i].Revenue += b.TotalAmount
		buckets[i].Bookings++
	}

	return buckets
}
