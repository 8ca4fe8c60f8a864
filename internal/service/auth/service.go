package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamdesk/salon-booking/internal/domain"
	userRepo "github.com/glamdesk/salon-booking/internal/infra/storage/user"
	identityClient "github.com/glamdesk/salon-booking/internal/integrations/identity"
	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service сервис аутентификации: локальные аккаунты и федеративный вход
type Service struct {
	userRepo     UserRepository
	tokenRepo    TokenRepository
	identity     IdentityClient
	tokens       *TokenManager
	refreshTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	identity IdentityClient,
	tokens *TokenManager,
	refreshTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		identity:     identity,
		tokens:       tokens,
		refreshTTL:   refreshTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Register регистрирует локальный аккаунт с bcrypt-хешем пароля
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenPairResponse, error) {
	s.logger.Info("Register: email=%s, role=%s", req.Email, req.Role)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	hashStr := string(hash)
	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: &hashStr,
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.AccountRole(req.Role),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s is already taken", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d", created.ID)
	return s.issueTokens(ctx, created)
}

// Login выполняет вход по email и паролю.
// Неизвестный email и неверный пароль возвращают одну и ту же ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPairResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user: %v", err)
		return nil, fmt.Errorf("%w: Login - get user: %v", ErrInternal, err)
	}

	if user.PasswordHash == nil {
		s.logger.Warn("Login: user id=%d is federated, password login rejected", user.ID)
		return nil, ErrFederatedAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d authenticated", user.ID)
	return s.issueTokens(ctx, user)
}

// FederatedLogin выполняет вход через внешнего identity-провайдера.
// Аккаунт создается при первом входе (find-or-create по provider + subject).
func (s *Service) FederatedLogin(ctx context.Context, req *models.FederatedLoginRequest) (*models.TokenPairResponse, error) {
	s.logger.Info("FederatedLogin: provider=%s", req.Provider)

	if req.Provider == "" || req.Token == "" {
		return nil, fmt.Errorf("%w: provider and token are required", ErrInvalidInput)
	}

	profile, err := s.identity.VerifyToken(ctx, req.Provider, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, identityClient.ErrTokenRejected):
			s.logger.Warn("FederatedLogin: provider %s rejected token", req.Provider)
			return nil, ErrTokenRejected
		case errors.Is(err, identityClient.ErrUnknownProvider):
			s.logger.Warn("FederatedLogin: unknown provider %s", req.Provider)
			return nil, ErrUnknownProvider
		default:
			s.logger.Error("FederatedLogin: verification failed: %v", err)
			return nil, fmt.Errorf("%w: FederatedLogin - verify token: %v", ErrInternal, err)
		}
	}

	user, err := s.userRepo.GetByProvider(ctx, profile.Provider, profile.SubjectID)
	if err == nil {
		s.logger.Info("FederatedLogin: existing user id=%d", user.ID)
		return s.issueTokens(ctx, user)
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("FederatedLogin: failed to get user: %v", err)
		return nil, fmt.Errorf("%w: FederatedLogin - get user: %v", ErrInternal, err)
	}

	// Первый вход: создаем аккаунт гостя без пароля
	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:      strings.ToLower(profile.Email),
		Name:       profile.Name,
		Role:       domain.AccountRoleGuest,
		Provider:   &profile.Provider,
		ProviderID: &profile.SubjectID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("FederatedLogin: email %s already registered locally", profile.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("FederatedLogin: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: FederatedLogin - create user: %v", ErrInternal, err)
	}

	s.logger.Info("FederatedLogin: created user id=%d for provider=%s", created.ID, profile.Provider)
	return s.issueTokens(ctx, created)
}

// Refresh обменивает refresh токен на новую пару токенов.
// Использованный токен удаляется: каждый refresh токен одноразовый.
func (s *Service) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenPairResponse, error) {
	if req.RefreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", ErrInvalidInput)
	}

	stored, err := s.tokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh: token not found")
		return nil, ErrInvalidRefreshToken
	}

	if err := s.tokenRepo.Delete(ctx, stored.Token); err != nil {
		s.logger.Error("Refresh: failed to rotate token: %v", err)
		return nil, fmt.Errorf("%w: Refresh - rotate token: %v", ErrInternal, err)
	}

	if stored.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("Refresh: token for user id=%d expired", stored.UserID)
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		s.logger.Error("Refresh: failed to get user id=%d: %v", stored.UserID, err)
		return nil, fmt.Errorf("%w: Refresh - get user: %v", ErrInternal, err)
	}

	s.logger.Info("Refresh: rotated token for user id=%d", user.ID)
	return s.issueTokens(ctx, user)
}

// issueTokens выпускает пару access + refresh токенов
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*models.TokenPairResponse, error) {
	now := s.timeProvider.Now()

	access, err := s.tokens.Sign(user, now)
	if err != nil {
		return nil, err
	}

	refresh := &domain.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.refreshTTL),
	}
	if err := s.tokenRepo.Create(ctx, refresh); err != nil {
		s.logger.Error("issueTokens: failed to store refresh token: %v", err)
		return nil, fmt.Errorf("%w: issueTokens - store refresh token: %v", ErrInternal, err)
	}

	return &models.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		ExpiresIn:    int64(s.tokens.accessTTL.Seconds()),
		User:         models.FromDomainUser(user),
	}, nil
}

// validateRegister валидирует данные регистрации
func validateRegister(req *models.RegisterRequest) error {
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if !domain.AccountRole(req.Role).IsValid() {
		return fmt.Errorf("%w: role must be owner or guest", ErrInvalidInput)
	}

	return nil
}
