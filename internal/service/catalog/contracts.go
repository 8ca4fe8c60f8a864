package catalog

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	List(ctx context.Context) ([]*domain.Salon, error)
	Update(ctx context.Context, id int64, patch *domain.SalonPatch) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetBySalonAndID(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
	ListBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, patch *domain.ServicePatch) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
