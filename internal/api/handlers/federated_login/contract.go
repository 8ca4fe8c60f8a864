package federated_login

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

type AuthService interface {
	FederatedLogin(ctx context.Context, req *models.FederatedLoginRequest) (*models.TokenPairResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
