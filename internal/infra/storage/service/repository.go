package service

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

var serviceColumns = []string{
	"id",
	"salon_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с услугами салонов
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"salon_id",
			"name",
			"description",
			"price",
			"duration_minutes",
			"is_active",
		).
		Values(
			service.SalonID,
			service.Name,
			service.Description,
			service.Price,
			service.DurationMinutes,
			service.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// GetBySalonAndID получает услугу, принадлежащую конкретному салону.
// Услуга чужого салона неотличима от отсутствующей.
func (r *Repository) GetBySalonAndID(ctx context.Context, salonID, serviceID int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonAndID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonAndID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListBySalon возвращает услуги салона. При onlyActive=true — только активные.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update применяет patch к услуге: в SET попадают только заполненные поля
func (r *Repository) Update(ctx context.Context, id int64, patch *domain.ServicePatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		updateBuilder = updateBuilder.Set("description", *patch.Description)
	}
	if patch.Price != nil {
		updateBuilder = updateBuilder.Set("price", *patch.Price)
	}
	if patch.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *patch.DurationMinutes)
	}
	if patch.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *patch.IsActive)
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
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.SalonID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time
	return &svc, nil
}
