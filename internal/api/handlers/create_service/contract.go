package create_service

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, salonID, userID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
