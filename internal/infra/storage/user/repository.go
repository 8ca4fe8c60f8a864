package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/psqlbuilder"
	"github.com/glamdesk/salon-booking/pkg/txmanager"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"role",
	"provider",
	"provider_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя.
// Нарушение уникальности email возвращается как ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"email",
			"password_hash",
			"name",
			"role",
			"provider",
			"provider_id",
		).
		Values(
			user.Email,
			user.PasswordHash,
			user.Name,
			user.Role,
			user.Provider,
			user.ProviderID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// GetByProvider получает федеративного пользователя по провайдеру и subject id
func (r *Repository) GetByProvider(ctx context.Context, provider, providerID string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"provider": provider, "provider_id": providerID}, "GetByProvider")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.Provider,
		&user.ProviderID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
