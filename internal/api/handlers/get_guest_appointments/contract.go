package get_guest_appointments

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetGuestAppointments(ctx context.Context, req *models.GetGuestAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
