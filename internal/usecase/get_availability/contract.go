package get_availability

import (
	"context"
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetBySalonAndID возвращает услугу, принадлежащую салону;
	// услуга чужого салона неотличима от отсутствующей
	GetBySalonAndID(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс поставщика существующих записей.
// Контракт: с фильтром OnlyOccupying возвращаются только записи в статусах
// pending/confirmed — движок доступности не перефильтровывает по статусу.
type AppointmentRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
