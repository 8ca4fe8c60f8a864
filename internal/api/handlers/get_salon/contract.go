package get_salon

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	GetSalon(ctx context.Context, id int64) (*models.SalonResponse, error)
	ListSalons(ctx context.Context) (*models.SalonListResponse, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*models.ServiceResponse, error)
	ListServices(ctx context.Context, salonID, userID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
