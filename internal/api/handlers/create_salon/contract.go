package create_salon

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateSalon(ctx context.Context, req *models.CreateSalonRequest) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
