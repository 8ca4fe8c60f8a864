package models

import (
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию локального аккаунта
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // "owner" или "guest"
}

// LoginRequest запрос на вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FederatedLoginRequest запрос на вход через внешнего провайдера
type FederatedLoginRequest struct {
	Provider string `json:"provider"`
	Token    string `json:"token"`
}

// RefreshRequest запрос на обмен refresh токена
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Response модели

// UserResponse данные пользователя
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenPairResponse пара токенов с данными пользователя
type TokenPairResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"` // Срок жизни access токена в секундах
	User         UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
