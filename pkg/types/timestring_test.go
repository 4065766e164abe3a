package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		expected  TimeString
	}{
		{name: "valid morning time", input: "09:30", expected: TimeString("09:30")},
		{name: "midnight", input: "00:00", expected: TimeString("00:00")},
		{name: "last minute of day", input: "23:59", expected: TimeString("23:59")},
		{name: "missing leading zero is normalized", input: "9:30", expected: TimeString("09:30")},
		{name: "out of range hour", input: "24:00", expectErr: true},
		{name: "out of range minute", input: "10:60", expectErr: true},
		{name: "with seconds", input: "10:00:00", expectErr: true},
		{name: "garbage", input: "abc", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ts)
			}
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Comparison(t *testing.T) {
	earlier := TimeString("09:00")
	later := TimeString("10:30")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))

	// Равные значения не раньше и не позже друг друга
	assert.False(t, earlier.IsBefore(earlier))
	assert.False(t, earlier.IsAfter(earlier))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("10:00")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), end)

	// Переход через полночь не допускается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = start.AddMinutes(-601)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL TIME приходит как строка с секундами
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
