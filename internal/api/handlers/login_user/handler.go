package login_user

import (
	"errors"
	"net/http"

	"github.com/glamdesk/salon-booking/internal/api/handlers"
	"github.com/glamdesk/salon-booking/internal/service/auth"
	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgFederatedAccount   = "аккаунт использует вход через внешнего провайдера"
	msgInvalidRefresh     = "невалидный refresh токен"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrFederatedAccount):
			h.logger.Warn("POST /auth/login - Federated account email=%s", req.Email)
			handlers.RespondBadRequest(w, msgFederatedAccount)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRefresh POST /api/v1/auth/refresh
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Refresh(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrInvalidRefreshToken):
			h.logger.Warn("POST /auth/refresh - Invalid refresh token")
			handlers.RespondUnauthorized(w, msgInvalidRefresh)

		default:
			h.logger.Error("POST /auth/refresh - Failed to refresh: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/refresh - Tokens rotated: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
