package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	getAvailability "github.com/glamdesk/salon-booking/internal/usecase/get_availability"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound    = "салон не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/availability
// Query params: date (required, YYYY-MM-DD), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// serviceId опционален: без него слоты считаются для длительности по умолчанию
	var serviceID *int64
	if serviceIDStr := r.URL.Query().Get("serviceId"); serviceIDStr != "" {
		parsed, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/availability - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &parsed
	}

	useCaseReq, err := ToUseCaseRequest(salonID, dateStr, serviceID)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/availability - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/availability - Service not found: salon_id=%d, service_id=%v", salonID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /salons/{id}/availability - Failed to get slots: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/availability - Slots retrieved: salon_id=%d, date=%s, slots_count=%d",
		salonID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
