package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/psqlbuilder"
	"github.com/glamdesk/salon-booking/pkg/txmanager"
)

// Repository репозиторий для работы с refresh токенами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория refresh токенов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый refresh токен
func (r *Repository) Create(ctx context.Context, token *domain.RefreshToken) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("refresh_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token.Token, token.UserID, token.ExpiresAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByToken получает refresh токен по значению
func (r *Repository) GetByToken(ctx context.Context, value string) (*domain.RefreshToken, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("token", "user_id", "expires_at", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var token domain.RefreshToken
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.Token,
		&token.UserID,
		&token.ExpiresAt,
		&token.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan token: %v", ErrScanRow, err)
	}

	return &token, nil
}

// Delete удаляет refresh токен (ротация при использовании)
func (r *Repository) Delete(ctx context.Context, value string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("refresh_tokens").
		Where(squirrel.Eq{"token": value}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// DeleteByUserID удаляет все refresh токены пользователя (logout everywhere)
func (r *Repository) DeleteByUserID(ctx context.Context, userID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("refresh_tokens").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByUserID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByUserID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
