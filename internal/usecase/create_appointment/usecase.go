package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamdesk/salon-booking/internal/domain"
	appointmentstorage "github.com/glamdesk/salon-booking/internal/infra/storage/appointment"
	salonstorage "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	servicestorage "github.com/glamdesk/salon-booking/internal/infra/storage/service"
)

// UseCase use case для создания записи гостем
type UseCase struct {
	salonRepo       SalonRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Новая запись всегда создается в статусе pending; подтверждает ее владелец
// салона через таблицу переходов.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечений и вставка выполняются под блокировкой записей дня.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: guest=%d, salon=%d, service=%d, date=%s, time=%s",
		req.GuestID, req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату и время относительно текущего момента
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s on %s already started", req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем салон
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 5. Проверяем, что слот лежит на сетке внутри рабочих часов
	if err := validateSlotTime(req.StartTime, salon.BusinessHours(), domain.DefaultSlotIntervalMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: slot time validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем услугу (услуга чужого салона неотличима от отсутствующей)
	service, err := uc.serviceRepo.GetBySalonAndID(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	durationMinutes := service.Duration()

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем занимающие записи дня с блокировкой (FOR UPDATE)
		occupying, err := uc.appointmentRepo.GetBySalonWithFilter(txCtx, domain.SalonAppointmentsFilter{
			SalonID:       req.SalonID,
			Date:          &req.Date,
			OnlyOccupying: true,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем доступность слота
		if hasOverlap(req.StartTime, durationMinutes, occupying) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is taken", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			GuestID:         req.GuestID,
			SalonID:         req.SalonID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentstorage.ErrSlotConflict) {
				// Параллельная транзакция успела занять слот
				uc.logger.Warn("CreateAppointment: concurrent booking took slot %s on %s", req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		GuestID:         result.GuestID,
		SalonID:         result.SalonID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
