package get_salon_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/api/middleware"
	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/internal/service/appointments"
	"github.com/glamdesk/salon-booking/internal/service/appointments/models"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgSalonNotFound    = "салон не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/appointments
// Query params: date, serviceId, status, onlyOccupying (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/appointments - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSalonAppointmentsRequest{
		SalonID: salonID,
		UserID:  userID,
	}

	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if serviceIDStr := query.Get("serviceId"); serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/appointments - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.OnlyOccupying = query.Get("onlyOccupying") == "true"

	result, err := h.service.GetSalonAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/appointments - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/appointments - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /salons/{id}/appointments - Failed to get appointments: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/appointments - Retrieved %d appointments for salon_id=%d", len(result.Appointments), salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
