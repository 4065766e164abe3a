package domain

// Default policy values, overridable through config.toml
const (
	DefaultSlotDurationMinutes       = 60
	DefaultMaxFutureReservations     = 5
	DefaultCancellationDeadlineHours = 2
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MaxNotesLength         = 500
)

// Pagination constants (zero-based pages)
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// WeekDays number of days in a week schedule projection
const WeekDays = 7
