package update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamdesk/salon-booking/internal/domain"
	appointmentstorage "github.com/glamdesk/salon-booking/internal/infra/storage/appointment"
)

// UseCase use case для смены статуса записи через таблицу переходов
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, salonRepo SalonRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// Execute выполняет смену статуса записи.
// Порядок проверок фиксирован: существование записи, затем авторизация
// (владелец салона или гость записи), и только потом таблица переходов.
// Непричастный пользователь получает отказ в доступе, а не детали перехода.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: appointment=%d, user=%d, target=%s",
		req.AppointmentID, req.UserID, req.TargetStatus)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	target := domain.AppointmentStatus(req.TargetStatus)
	if !target.IsValid() {
		uc.logger.Warn("UpdateStatus: unknown status %q", req.TargetStatus)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.TargetStatus)
	}

	// 2. Получаем запись
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateStatus: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateStatus: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Определяем роль пользователя относительно записи
	role, err := uc.resolveRole(ctx, appointment, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем переход по таблице
	if err := domain.ValidateTransition(appointment.Status, target, role); err != nil {
		uc.logger.Warn("UpdateStatus: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	// 5. Применяем новый статус
	if err := uc.appointmentRepo.UpdateStatus(ctx, appointment.ID, target); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s by %s",
		appointment.ID, appointment.Status, target, role)

	return &Response{
		ID:        appointment.ID,
		GuestID:   appointment.GuestID,
		SalonID:   appointment.SalonID,
		ServiceID: appointment.ServiceID,
		Date:      appointment.Date,
		StartTime: appointment.StartTime,
		Status:    string(target),
		Role:      string(role),
	}, nil
}

// resolveRole определяет, в какой роли пользователь действует над записью.
// Владелец салона получает роль owner даже для собственной записи гостем
// в своем салоне: владение салоном сильнее.
func (uc *UseCase) resolveRole(ctx context.Context, appointment *domain.Appointment, userID int64) (domain.Role, error) {
	salon, err := uc.salonRepo.GetByID(ctx, appointment.SalonID)
	if err != nil {
		uc.logger.Error("UpdateStatus: failed to get salon id=%d: %v", appointment.SalonID, err)
		return "", fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if salon.IsOwnedBy(userID) {
		return domain.RoleOwner, nil
	}
	if appointment.GuestID == userID {
		return domain.RoleGuest, nil
	}

	uc.logger.Warn("UpdateStatus: user id=%d is neither owner nor guest of appointment id=%d", userID, appointment.ID)
	return "", ErrAccessDenied
}
