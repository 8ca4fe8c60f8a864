package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamdesk/salon-booking/pkg/types"
)

func TestNewBusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		wantErr error
	}{
		{"valid window", "09:00", "18:00", nil},
		{"full day", "00:00", "23:59", nil},
		{"opening after closing", "18:00", "09:00", ErrInvalidBusinessHours},
		{"opening equals closing", "09:00", "09:00", ErrInvalidBusinessHours},
		{"malformed opening", "9am", "18:00", types.ErrMalformedTime},
		{"malformed closing", "09:00", "25:00", types.ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewBusinessHours(tt.opening, tt.closing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.opening, h.Opening.String())
			assert.Equal(t, tt.closing, h.Closing.String())
		})
	}
}

func TestBusinessHours_Validate(t *testing.T) {
	// Окно, собранное в обход конструктора (например, из кривых данных БД)
	corrupt := BusinessHours{
		Opening: types.TimeString("18:00"),
		Closing: types.TimeString("09:00"),
	}
	assert.ErrorIs(t, corrupt.Validate(), ErrInvalidBusinessHours)

	malformed := BusinessHours{
		Opening: types.TimeString("garbage"),
		Closing: types.TimeString("18:00"),
	}
	assert.ErrorIs(t, malformed.Validate(), types.ErrMalformedTime)
}

func TestBusinessHours_WindowFor(t *testing.T) {
	h, err := NewBusinessHours("09:30", "18:00")
	require.NoError(t, err)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	open, close := h.WindowFor(date)

	assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC), close)
}
