package salon

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

var salonColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"phone",
	"opening_time",
	"closing_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с салонами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает новый салон
func (r *Repository) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salons").
		Columns(
			"owner_id",
			"name",
			"description",
			"address",
			"phone",
			"opening_time",
			"closing_time",
		).
		Values(
			salon.OwnerID,
			salon.Name,
			salon.Description,
			salon.Address,
			salon.Phone,
			salon.OpeningTime,
			salon.ClosingTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&salon.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return salon, nil
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var salon domain.Salon
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&salon.OwnerID,
		&salon.Name,
		&salon.Description,
		&salon.Address,
		&salon.Phone,
		&salon.OpeningTime,
		&salon.ClosingTime,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}

// List возвращает все салоны, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Salon, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		var salon domain.Salon
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&salon.ID,
			&salon.OwnerID,
			&salon.Name,
			&salon.Description,
			&salon.Address,
			&salon.Phone,
			&salon.OpeningTime,
			&salon.ClosingTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		salon.CreatedAt = createdAt.Time
		salon.UpdatedAt = updatedAt.Time
		salons = append(salons, &salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// Update применяет patch к салону: в SET попадают только заполненные поля.
// Списки полей никогда не собираются из строк запроса.
func (r *Repository) Update(ctx context.Context, id int64, patch *domain.SalonPatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("salons").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		updateBuilder = updateBuilder.Set("description", *patch.Description)
	}
	if patch.Address != nil {
		updateBuilder = updateBuilder.Set("address", *patch.Address)
	}
	if patch.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *patch.Phone)
	}
	if patch.OpeningTime != nil {
		updateBuilder = updateBuilder.Set("opening_time", *patch.OpeningTime)
	}
	if patch.ClosingTime != nil {
		updateBuilder = updateBuilder.Set("closing_time", *patch.ClosingTime)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}
