package federated_login

import (
	"errors"
	"net/http"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/service/auth"
	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgTokenRejected   = "внешний провайдер не принял токен"
	msgUnknownProvider = "неизвестный провайдер"
	msgEmailTaken      = "email уже зарегистрирован локально"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/federated
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FederatedLoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/federated - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.FederatedLogin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrTokenRejected):
			h.logger.Warn("POST /auth/federated - Token rejected by provider=%s", req.Provider)
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, auth.ErrUnknownProvider):
			h.logger.Warn("POST /auth/federated - Unknown provider=%s", req.Provider)
			handlers.RespondBadRequest(w, msgUnknownProvider)

		case errors.Is(err, auth.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/federated - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/federated - User logged in: user_id=%d, provider=%s", result.User.ID, req.Provider)
	handlers.RespondJSON(w, http.StatusOK, result)
}
