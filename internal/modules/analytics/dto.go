package analytics

// Period selects the aggregation window relative to "now".
type Period string

const (
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// RevenueSummary mirrors what the dashboard's analytics tab renders.
// MonthlyBreakdown is present for the yearly period only and always
// carries twelve buckets in calendar order.
type RevenueSummary struct {
	TotalRevenue     float64          `json:"total_revenue"`
	TotalBookings    int              `json:"total_bookings"`
	AvgBookingValue  float64          `json:"avg_booking_value"`
	MonthlyBreakdown []MonthlyRevenue `json:"monthly_breakdown,omitempty"`
}
