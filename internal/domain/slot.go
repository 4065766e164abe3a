package domain

import (
	"github.com/courtclub/court-booking-service/pkg/types"
)

// SlotInterval is a fixed-width half-open time interval [Start, End)
// derived from a court's operating hours
type SlotInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// BuildSlotGrid turns operating hours into the ordered sequence of bookable
// intervals: starting at opening, stepping by slotMinutes, stopping before
// any interval whose end would exceed closing. A trailing partial slot is
// dropped silently.
//
// Pure and deterministic; returns an empty grid for non-positive durations
// or inverted hours.
func BuildSlotGrid(opening, closing types.TimeString, slotMinutes int) []SlotInterval {
	grid := make([]SlotInterval, 0)

	if slotMinutes <= 0 || !opening.IsBefore(closing) {
		return grid
	}

	current := opening
	for current.IsBefore(closing) {
		end, err := current.AddMinutes(slotMinutes)
		if err != nil || end.IsAfter(closing) {
			break
		}

		grid = append(grid, SlotInterval{Start: current, End: end})
		current = end
	}

	return grid
}
