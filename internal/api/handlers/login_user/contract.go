package login_user

import (
	"context"

	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPairResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenPairResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
