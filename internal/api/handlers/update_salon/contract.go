package update_salon

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateSalon(ctx context.Context, id, userID int64, req *models.UpdateSalonRequest) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
