package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamdesk/salon-booking/internal/domain"
	userRepo "github.com/glamdesk/salon-booking/internal/infra/storage/user"
	identityClient "github.com/glamdesk/salon-booking/internal/integrations/identity"
	"github.com/glamdesk/salon-booking/internal/service/auth/models"
)

type fakeUserRepo struct {
	byEmail    map[string]*domain.User
	byProvider map[string]*domain.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:    make(map[string]*domain.User),
		byProvider: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, userRepo.ErrEmailTaken
	}
	created := *user
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.nextID++
	r.byEmail[created.Email] = &created
	if created.Provider != nil {
		r.byProvider[*created.Provider+"/"+*created.ProviderID] = &created
	}
	return &created, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) GetByProvider(_ context.Context, provider, providerID string) (*domain.User, error) {
	if u, ok := r.byProvider[provider+"/"+providerID]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeTokenRepo struct {
	tokens map[string]*domain.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *domain.RefreshToken) error {
	stored := *token
	r.tokens[token.Token] = &stored
	return nil
}

func (r *fakeTokenRepo) GetByToken(_ context.Context, value string) (*domain.RefreshToken, error) {
	if t, ok := r.tokens[value]; ok {
		return t, nil
	}
	return nil, assert.AnError
}

func (r *fakeTokenRepo) Delete(_ context.Context, value string) error {
	delete(r.tokens, value)
	return nil
}

func (r *fakeTokenRepo) DeleteByUserID(_ context.Context, userID int64) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

type fakeIdentityClient struct {
	profile *identityClient.Profile
	err     error
}

func (c *fakeIdentityClient) VerifyToken(_ context.Context, _, _ string) (*identityClient.Profile, error) {
	return c.profile, c.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(users *fakeUserRepo, tokens *fakeTokenRepo, idClient IdentityClient) *Service {
	return NewService(
		users,
		tokens,
		idClient,
		NewTokenManager("test-secret", 15*time.Minute),
		720*time.Hour,
		noopLogger{},
	)
}

func TestService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, newFakeTokenRepo(), &fakeIdentityClient{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "Owner@Example.com",
		Password: "secret-password",
		Name:     "Alex",
		Role:     "owner",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "owner", resp.User.Role)

	// Email нормализуется к нижнему регистру
	stored, err := users.GetByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("secret-password")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeTokenRepo(), &fakeIdentityClient{})

	req := &models.RegisterRequest{Email: "a@b.com", Password: "secret-password", Name: "A", Role: "guest"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_Validation(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeTokenRepo(), &fakeIdentityClient{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"bad email", models.RegisterRequest{Email: "not-an-email", Password: "secret-password", Name: "A", Role: "guest"}},
		{"short password", models.RegisterRequest{Email: "a@b.com", Password: "short", Name: "A", Role: "guest"}},
		{"empty name", models.RegisterRequest{Email: "a@b.com", Password: "secret-password", Name: "  ", Role: "guest"}},
		{"unknown role", models.RegisterRequest{Email: "a@b.com", Password: "secret-password", Name: "A", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Login(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, newFakeTokenRepo(), &fakeIdentityClient{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "a@b.com", Password: "secret-password", Name: "A", Role: "guest",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Неизвестный email неотличим от неверного пароля
	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@b.com", Password: "secret-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_FederatedAccount(t *testing.T) {
	users := newFakeUserRepo()
	provider, subject := "google", "sub-1"
	_, err := users.Create(context.Background(), &domain.User{
		Email:      "fed@b.com",
		Name:       "Fed",
		Role:       domain.AccountRoleGuest,
		Provider:   &provider,
		ProviderID: &subject,
	})
	require.NoError(t, err)

	svc := newTestService(users, newFakeTokenRepo(), &fakeIdentityClient{})

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "fed@b.com", Password: "anything-at-all"})
	assert.ErrorIs(t, err, ErrFederatedAccount)
}

func TestService_FederatedLogin_FindOrCreate(t *testing.T) {
	users := newFakeUserRepo()
	idClient := &fakeIdentityClient{profile: &identityClient.Profile{
		Provider:  "google",
		SubjectID: "sub-42",
		Email:     "fed@b.com",
		Name:      "Fed",
	}}
	svc := newTestService(users, newFakeTokenRepo(), idClient)

	// Первый вход создает аккаунт гостя
	first, err := svc.FederatedLogin(context.Background(), &models.FederatedLoginRequest{Provider: "google", Token: "ext"})
	require.NoError(t, err)
	assert.Equal(t, "guest", first.User.Role)

	// Повторный вход находит тот же аккаунт
	second, err := svc.FederatedLogin(context.Background(), &models.FederatedLoginRequest{Provider: "google", Token: "ext"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestService_FederatedLogin_TokenRejected(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeTokenRepo(), &fakeIdentityClient{err: identityClient.ErrTokenRejected})

	_, err := svc.FederatedLogin(context.Background(), &models.FederatedLoginRequest{Provider: "google", Token: "bad"})
	assert.ErrorIs(t, err, ErrTokenRejected)
}

func TestService_Refresh_Rotates(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := newTestService(users, tokens, &fakeIdentityClient{})

	reg, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "a@b.com", Password: "secret-password", Name: "A", Role: "guest",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// Использованный токен одноразовый
	_, err = svc.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Refresh_Expired(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := newTestService(users, tokens, &fakeIdentityClient{})

	user, err := users.Create(context.Background(), &domain.User{Email: "a@b.com", Name: "A", Role: domain.AccountRoleGuest})
	require.NoError(t, err)

	expired := &domain.RefreshToken{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, tokens.Create(context.Background(), expired))

	_, err = svc.Refresh(context.Background(), &models.RefreshRequest{RefreshToken: "expired-token"})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestTokenManager_SignAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", 15*time.Minute)
	user := &domain.User{ID: 7, Role: domain.AccountRoleOwner}

	signed, err := manager.Sign(user, time.Now())
	require.NoError(t, err)

	claims, err := manager.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	signed, err := NewTokenManager("secret-one", 15*time.Minute).Sign(&domain.User{ID: 7}, time.Now())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-two", 15*time.Minute).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", 15*time.Minute)

	signed, err := manager.Sign(&domain.User{ID: 7}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = manager.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}
