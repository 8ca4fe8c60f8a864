package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamdesk/salon-booking/internal/domain"
	salonstorage "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	servicestorage "github.com/glamdesk/salon-booking/internal/infra/storage/service"
)

// UseCase расчет доступных слотов для салона на дату
type UseCase struct {
	salonRepo       SalonRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	log             Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	salonRepo SalonRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// Execute возвращает доступные слоты салона на дату.
// Длительность берется из услуги, если услуга указана, иначе — 60 минут.
// Расчет чисто читающий: никакие записи не создаются и не блокируются.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon id %d", ErrSalonNotFound, req.SalonID)
		}
		uc.log.Error("Execute: failed to get salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	hours := salon.BusinessHours()
	if err := hours.Validate(); err != nil {
		// Инвариант opening < closing проверяется при записи салона,
		// нарушение здесь означает поврежденные данные
		uc.log.Error("Execute: salon %d has invalid business hours %s-%s: %v",
			salon.ID, hours.Opening, hours.Closing, err)
		return nil, fmt.Errorf("%w: invalid business hours: %v", ErrInternal, err)
	}

	durationMinutes := domain.DefaultServiceDurationMinutes
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetBySalonAndID(ctx, req.SalonID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, servicestorage.ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: service id %d in salon %d", ErrServiceNotFound, *req.ServiceID, req.SalonID)
			}
			uc.log.Error("Execute: failed to get service %d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMinutes = service.Duration()
	}

	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, domain.SalonAppointmentsFilter{
		SalonID:       req.SalonID,
		Date:          &req.Date,
		OnlyOccupying: true,
	})
	if err != nil {
		uc.log.Error("Execute: failed to get appointments for salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	candidates := generateTimeSlots(req.Date, hours, domain.DefaultSlotIntervalMinutes, now)

	slots := make([]Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if !isSlotAvailable(candidate, durationMinutes, appointments) {
			continue
		}
		slots = append(slots, Slot{
			StartTime:       candidate,
			FormattedTime:   candidate.Format12Hour(),
			DurationMinutes: durationMinutes,
		})
	}

	uc.log.Info("Execute: salon=%d date=%s duration=%d candidates=%d available=%d",
		req.SalonID, req.Date.Format(domain.DateFormat), durationMinutes, len(candidates), len(slots))

	return &Response{
		SalonID:       req.SalonID,
		Date:          req.Date,
		BusinessHours: hours,
		Slots:         slots,
	}, nil
}
