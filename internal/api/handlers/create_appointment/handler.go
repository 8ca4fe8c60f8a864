package create_appointment

import (
	"errors"
	"net/http"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/api/middleware"
	createAppointment "github.com/glamdesk/salon-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgSalonNotFound    = "салон не найден"
	msgServiceNotFound  = "услуга не найдена"
	msgServiceInactive  = "услуга недоступна для записи"
	msgSlotNotAvailable = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(guestID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: salon_id=%d, service_id=%d", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot taken: salon_id=%d, date=%s, time=%s", req.SalonID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidInput),
			errors.Is(err, createAppointment.ErrInvalidDate),
			errors.Is(err, createAppointment.ErrInvalidTimeSlot),
			errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, guest_id=%d", result.ID, guestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
