package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtclub/court-booking-service/pkg/types"
)

// ReservationStatus represents the status of a court reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// ErrUnknownStatus is returned by ParseReservationStatus for unrecognized values
var ErrUnknownStatus = errors.New("domain: unknown reservation status")

// ParseReservationStatus parses a status string into a ReservationStatus.
// Total function: unknown values produce ErrUnknownStatus, never a panic.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Reservation represents a court reservation made by a user.
// StartTime/EndTime form a half-open interval [start, end): reservations
// sharing a boundary do not overlap.
type Reservation struct {
	ID        string
	UserID    string
	CourtID   string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus

	// PaidPrice is fixed at creation from the court's role-based price
	// and never recomputed afterwards
	PaidPrice float64
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// IsTerminal returns true for states a user-initiated action cannot leave
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted
}

// StartsAt combines the reservation date and start time into a point in time
func (r *Reservation) StartsAt() time.Time {
	return time.Date(
		r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.StartTime.Minutes()/60, r.StartTime.Minutes()%60, 0, 0,
		r.Date.Location(),
	)
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent intervals sharing a boundary do not.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// ReservationsFilter filter for the admin reservation listing
type ReservationsFilter struct {
	CourtID *string
	Date    *time.Time
	Status  *ReservationStatus
}
