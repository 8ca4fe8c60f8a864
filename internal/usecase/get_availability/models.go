package get_availability

import (
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// Request модель запроса на расчет доступных слотов
type Request struct {
	SalonID   int64     // ID салона
	Date      time.Time // Дата (без времени)
	ServiceID *int64    // ID услуги (опционально; без услуги берется длительность по умолчанию)
}

// Response модель ответа с рабочими часами и списком доступных слотов
type Response struct {
	SalonID       int64
	Date          time.Time
	BusinessHours domain.BusinessHours
	Slots         []Slot // Отсортированы по возрастанию времени начала
}

// Slot доступный слот. Эфемерная модель: живет только в рамках одного запроса.
type Slot struct {
	StartTime       types.TimeString // "14:30"
	FormattedTime   string           // "2:30 PM"
	DurationMinutes int
}
