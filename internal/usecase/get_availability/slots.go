package get_availability

import (
	"fmt"
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// generateTimeSlots перечисляет кандидатов начала слота внутри рабочих часов.
//
// Обход идет по часам от часа открытия до часа закрытия включительно:
//   - в первом часе минутный курсор стартует с минуты открытия,
//     в остальных — с нуля;
//   - курсор округляется вверх до ближайшего кратного slotInterval;
//   - в часе закрытия допускаются только старты, после которых до закрытия
//     остается полный интервал: неполные хвостовые слоты не генерируются.
//
// Если запрошенный день — сегодняшний, кандидаты строго в прошлом
// относительно now отбрасываются. Для других дат фильтрация по now не
// применяется. Результат упорядочен по возрастанию самим порядком обхода.
func generateTimeSlots(
	date time.Time,
	hours domain.BusinessHours,
	slotInterval int,
	now time.Time,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	openHour, openMinute := hours.Opening.Hour(), hours.Opening.Minute()
	closeHour, closeMinute := hours.Closing.Hour(), hours.Closing.Minute()
	today := isSameDay(date, now)

	for h := openHour; h <= closeHour; h++ {
		startMinute := 0
		if h == openHour {
			startMinute = openMinute
		}

		endMinute := 59
		if h == closeHour {
			endMinute = closeMinute - slotInterval
		}

		// Округляем курсор вверх до сетки интервала
		if rem := startMinute % slotInterval; rem != 0 {
			startMinute += slotInterval - rem
		}

		for m := startMinute; m <= endMinute; m += slotInterval {
			candidate := types.TimeString(fmt.Sprintf("%02d:%02d", h, m))
			if today && candidate.At(date).Before(now) {
				continue
			}
			slots = append(slots, candidate)
		}
	}

	return slots
}

// isSlotAvailable проверяет, что кандидат не пересекается ни с одной из
// существующих записей. Интервалы полуоткрытые: [s1, e1) и [s2, e2)
// пересекаются тогда и только тогда, когда s1 < e2 && s2 < e1.
// Слот, заканчивающийся ровно в момент начала записи, доступен
// (и наоборот).
func isSlotAvailable(start types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotStart := start.MinutesFromMidnight()
	slotEnd := slotStart + durationMinutes

	for _, appt := range appointments {
		apptStart := appt.StartTime.MinutesFromMidnight()

		apptDuration := appt.DurationMinutes
		if apptDuration <= 0 {
			apptDuration = domain.DefaultServiceDurationMinutes
		}
		apptEnd := apptStart + apptDuration

		if slotStart < apptEnd && apptStart < slotEnd {
			return false
		}
	}

	return true
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
