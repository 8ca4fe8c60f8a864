package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/types"
)

func mustHours(t *testing.T, opening, closing string) domain.BusinessHours {
	t.Helper()
	h, err := domain.NewBusinessHours(opening, closing)
	require.NoError(t, err)
	return h
}

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) // другой день, фильтрации нет

	slots := generateTimeSlots(date, mustHours(t, "09:00", "17:00"), 30, now)

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])

	// Слоты строго возрастают с шагом 30 минут
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].MinutesFromMidnight()+30, slots[i].MinutesFromMidnight())
	}
}

func TestGenerateTimeSlots_OpeningNotOnGrid(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Открытие 09:15 округляется вверх до 09:30
	slots := generateTimeSlots(date, mustHours(t, "09:15", "11:00"), 30, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("09:30"), slots[0])
	assert.Equal(t, types.TimeString("10:30"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_WindowTooNarrow(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// 09:15-09:45: после округления старта до 09:30 полный интервал
	// до закрытия уже не помещается
	slots := generateTimeSlots(date, mustHours(t, "09:15", "09:45"), 30, now)

	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_SameDayPastFiltered(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 11, 15, 0, 0, time.UTC)

	slots := generateTimeSlots(date, mustHours(t, "09:00", "17:00"), 30, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("11:30"), slots[0])
	for _, s := range slots {
		assert.False(t, s.At(date).Before(now), "slot %s is in the past", s)
	}
}

func TestGenerateTimeSlots_OtherDayNotFiltered(t *testing.T) {
	// Вчерашняя дата: фильтр по now применяется только к сегодняшнему дню
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 11, 15, 0, 0, time.UTC)

	slots := generateTimeSlots(date, mustHours(t, "09:00", "17:00"), 30, now)

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	hours := mustHours(t, "08:30", "20:00")

	first := generateTimeSlots(date, hours, 30, now)
	second := generateTimeSlots(date, hours, 30, now)

	assert.Equal(t, first, second)
}

func occupying(start types.TimeString, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestIsSlotAvailable_HalfOpenBoundaries(t *testing.T) {
	appointments := []*domain.Appointment{occupying("10:00", 30)}

	tests := []struct {
		name      string
		start     types.TimeString
		duration  int
		available bool
	}{
		{"slot ends exactly at appointment start", "09:30", 30, true},
		{"slot overlaps appointment tail", "09:45", 30, false},
		{"slot coincides with appointment", "10:00", 30, false},
		{"slot starts exactly at appointment end", "10:30", 30, true},
		{"long slot swallows appointment", "09:00", 120, false},
		{"slot inside long window after appointment", "11:00", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.available, isSlotAvailable(tt.start, tt.duration, appointments))
		})
	}
}

func TestIsSlotAvailable_DefaultsAppointmentDuration(t *testing.T) {
	// Запись без длительности занимает 60 минут
	appointments := []*domain.Appointment{occupying("10:00", 0)}

	assert.False(t, isSlotAvailable("10:30", 30, appointments))
	assert.True(t, isSlotAvailable("11:00", 30, appointments))
}

func TestIsSlotAvailable_NoAppointments(t *testing.T) {
	assert.True(t, isSlotAvailable("10:00", 30, nil))
}
