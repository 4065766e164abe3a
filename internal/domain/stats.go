package domain

// CourtUsage aggregated usage of a single court over a date range
type CourtUsage struct {
	CourtID          string
	CourtName        string
	ReservationCount int64
	Revenue          float64
}

// CountedStatuses statuses that contribute to dashboard statistics:
// reservations that occupy or occupied a slot
var CountedStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}
