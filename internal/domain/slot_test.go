package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtclub/court-booking-service/pkg/types"
)

func TestBuildSlotGrid(t *testing.T) {
	tests := []struct {
		name        string
		opening     types.TimeString
		closing     types.TimeString
		slotMinutes int
		expected    []SlotInterval
	}{
		{
			name:        "two full hour slots",
			opening:     types.TimeString("08:00"),
			closing:     types.TimeString("10:00"),
			slotMinutes: 60,
			expected: []SlotInterval{
				{Start: "08:00", End: "09:00"},
				{Start: "09:00", End: "10:00"},
			},
		},
		{
			name:        "trailing partial slot is dropped",
			opening:     types.TimeString("08:00"),
			closing:     types.TimeString("09:30"),
			slotMinutes: 60,
			expected: []SlotInterval{
				{Start: "08:00", End: "09:00"},
			},
		},
		{
			name:        "thirty minute slots",
			opening:     types.TimeString("22:00"),
			closing:     types.TimeString("23:30"),
			slotMinutes: 30,
			expected: []SlotInterval{
				{Start: "22:00", End: "22:30"},
				{Start: "22:30", End: "23:00"},
				{Start: "23:00", End: "23:30"},
			},
		},
		{
			name:        "inverted hours give empty grid",
			opening:     types.TimeString("18:00"),
			closing:     types.TimeString("08:00"),
			slotMinutes: 60,
			expected:    []SlotInterval{},
		},
		{
			name:        "non-positive duration gives empty grid",
			opening:     types.TimeString("08:00"),
			closing:     types.TimeString("10:00"),
			slotMinutes: 0,
			expected:    []SlotInterval{},
		},
		{
			name:        "window shorter than slot gives empty grid",
			opening:     types.TimeString("08:00"),
			closing:     types.TimeString("08:30"),
			slotMinutes: 60,
			expected:    []SlotInterval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildSlotGrid(tt.opening, tt.closing, tt.slotMinutes)
			assert.Equal(t, tt.expected, grid)
		})
	}
}

func TestBuildSlotGrid_Deterministic(t *testing.T) {
	first := BuildSlotGrid("08:00", "20:00", 60)
	second := BuildSlotGrid("08:00", "20:00", 60)

	require.Len(t, first, 12)
	assert.Equal(t, first, second)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   types.TimeString
		aEnd     types.TimeString
		bStart   types.TimeString
		bEnd     types.TimeString
		expected bool
	}{
		{name: "partial overlap", aStart: "10:00", aEnd: "11:00", bStart: "10:30", bEnd: "11:30", expected: true},
		{name: "contained interval", aStart: "10:00", aEnd: "12:00", bStart: "10:30", bEnd: "11:00", expected: true},
		{name: "identical intervals", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", expected: true},
		{name: "adjacent intervals do not conflict", aStart: "10:00", aEnd: "11:00", bStart: "11:00", bEnd: "12:00", expected: false},
		{name: "adjacent intervals reversed", aStart: "11:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", expected: false},
		{name: "disjoint intervals", aStart: "08:00", aEnd: "09:00", bStart: "15:00", bEnd: "16:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestParseReservationStatus(t *testing.T) {
	status, err := ParseReservationStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	status, err = ParseReservationStatus("  CANCELLED ")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, status)

	_, err = ParseReservationStatus("BOOKED")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseReservationStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("member")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	_, err = ParseRole("SUPERUSER")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCourt_PriceFor(t *testing.T) {
	court := &Court{BasePrice: 25.00, MemberPrice: 18.00}

	assert.Equal(t, 18.00, court.PriceFor(RoleMember))
	assert.Equal(t, 25.00, court.PriceFor(RoleStandard))
	assert.Equal(t, 25.00, court.PriceFor(RoleAdmin))
}
