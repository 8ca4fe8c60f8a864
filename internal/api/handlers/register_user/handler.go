package register_user

import (
	"errors"
	"net/http"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/service/auth"
	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

const (
	msgInvalidBody = "некорректное тело запроса"
	msgEmailTaken  = "email уже зарегистрирован"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
