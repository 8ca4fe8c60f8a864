package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"missing leading zero", "9:00", true},
		{"hour out of range", "24:00", true},
		{"minute out of range", "10:60", true},
		{"seconds not allowed", "10:00:00", true},
		{"empty", "", true},
		{"garbage", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesFromMidnight())
	assert.Equal(t, 9*60+30, TimeString("09:30").MinutesFromMidnight())
	assert.Equal(t, 23*60+59, TimeString("23:59").MinutesFromMidnight())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("00:00").AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrMalformedTime)

	_, err = TimeString("00:10").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	got := TimeString("14:30").At(date)

	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Format12Hour(t *testing.T) {
	tests := []struct {
		input TimeString
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:30", "11:30 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Format12Hour())
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	// TIME колонки возвращают секунды
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 15, 16, 45, 12, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrMalformedTime)
}
