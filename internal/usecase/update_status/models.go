package update_status

import (
	"time"

	"github.com/glamdesk/salon-booking/pkg/types"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID int64  // ID записи
	UserID        int64  // ID пользователя (из токена)
	TargetStatus  string // Целевой статус ("confirmed", "cancelled", "completed")
}

// Response модель ответа с обновленной записью
type Response struct {
	ID        int64
	GuestID   int64
	SalonID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	Status    string // Новый статус
	Role      string // Роль, в которой действовал пользователь
}
