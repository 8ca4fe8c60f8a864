package create_appointment

import (
	"time"

	"github.com/glamdesk/salon-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	GuestID   int64            // ID гостя (из токена)
	SalonID   int64            // ID салона
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	GuestID         int64
	SalonID         int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string // Всегда "pending" для новой записи

	// Денормализованные данные услуги на момент записи
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
