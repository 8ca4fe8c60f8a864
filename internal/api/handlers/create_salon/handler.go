package create_salon

import (
	"errors"
	"net/http"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/api/middleware"
	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/internal/service/catalog"
	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgMissingUserID = "отсутствует ID пользователя"
	msgOwnerOnly     = "создавать салоны могут только владельцы"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Аккаунт гостя не может владеть салонами
	if role, _ := middleware.GetUserRole(r.Context()); role != string(domain.AccountRoleOwner) {
		h.logger.Warn("POST /salons - User %d with role %s tried to create a salon", userID, role)
		handlers.RespondForbidden(w, msgOwnerOnly)
		return
	}

	var req models.CreateSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.OwnerID = userID

	result, err := h.service.CreateSalon(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /salons - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /salons - Failed to create salon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons - Salon created: salon_id=%d, owner_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
