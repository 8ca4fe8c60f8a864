package create_appointment

import (
	"fmt"
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotTime проверяет, что время начала лежит на сетке слотов
// и укладывается в рабочие часы: старт не раньше открытия, и до закрытия
// остается хотя бы полный интервал
func validateSlotTime(start types.TimeString, hours domain.BusinessHours, slotInterval int) error {
	if start.Minute()%slotInterval != 0 {
		return fmt.Errorf("%w: start time %s is not aligned to the %d-minute grid", ErrInvalidTimeSlot, start, slotInterval)
	}

	if start.IsBefore(hours.Opening) {
		return fmt.Errorf("%w: start time %s is before opening %s", ErrInvalidTimeSlot, start, hours.Opening)
	}

	if start.MinutesFromMidnight()+slotInterval > hours.Closing.MinutesFromMidnight() {
		return fmt.Errorf("%w: start time %s does not fit before closing %s", ErrInvalidTimeSlot, start, hours.Closing)
	}

	return nil
}

// validateNotInPast проверяет, что слот на сегодня еще не начался
func validateNotInPast(date time.Time, start types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}
	if start.At(date).Before(now) {
		return ErrTooLateToBook
	}
	return nil
}

// hasOverlap проверяет пересечение слота с существующими записями.
// Интервалы полуоткрытые: совпадение границ пересечением не считается.
func hasOverlap(start types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotStart := start.MinutesFromMidnight()
	slotEnd := slotStart + durationMinutes

	for _, appt := range appointments {
		apptStart := appt.StartTime.MinutesFromMidnight()

		apptDuration := appt.DurationMinutes
		if apptDuration <= 0 {
			apptDuration = domain.DefaultServiceDurationMinutes
		}

		if slotStart < apptStart+apptDuration && apptStart < slotEnd {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
