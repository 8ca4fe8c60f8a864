package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamdesk/salon-booking/internal/domain"
	appointmentRepo "github.com/glamdesk/salon-booking/internal/infra/storage/appointment"
	salonRepo "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	"github.com/glamdesk/salon-booking/internal/service/appointments/models"
)

// Service сервис чтения записей: карточка, история гостя, расписание салона
type Service struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Запись видят только ее гость и владелец салона.
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, appointment, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetGuestAppointments получает историю записей гостя.
// Опционально фильтрует по статусу.
func (s *Service) GetGuestAppointments(ctx context.Context, req *models.GetGuestAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetGuestAppointments: fetching appointments for guest=%d, status=%v", req.GuestID, req.Status)

	if req.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		converted, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetGuestAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &converted
	}

	appointments, err := s.appointmentRepo.GetByGuestID(ctx, req.GuestID, status)
	if err != nil {
		s.logger.Error("GetGuestAppointments: repository error for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestAppointments: fetched %d appointments for guest=%d", len(appointments), req.GuestID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetSalonAppointments получает расписание салона с фильтрацией по дню,
// услуге и статусу. Доступно только владельцу салона.
func (s *Service) GetSalonAppointments(ctx context.Context, req *models.GetSalonAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetSalonAppointments: fetching appointments for salon=%d, user=%d", req.SalonID, req.UserID)

	salon, err := s.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalonAppointments: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalonAppointments: repository error for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonAppointments - repository error: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(req.UserID) {
		s.logger.Warn("GetSalonAppointments: user=%d does not own salon id=%d", req.UserID, req.SalonID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSalonAppointments: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSalonAppointments: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonAppointments: fetched %d appointments for salon=%d", len(appointments), req.SalonID)
	return models.FromDomainAppointmentList(appointments), nil
}

// checkUserAccess проверяет, что пользователь — гость записи или владелец салона
func (s *Service) checkUserAccess(ctx context.Context, appointment *domain.Appointment, userID int64) error {
	if appointment.GuestID == userID {
		return nil
	}

	salon, err := s.salonRepo.GetByID(ctx, appointment.SalonID)
	if err != nil {
		s.logger.Error("checkUserAccess: failed to get salon id=%d: %v", appointment.SalonID, err)
		return fmt.Errorf("%w: checkUserAccess - repository error: %v", ErrInternal, err)
	}

	if salon.IsOwnedBy(userID) {
		return nil
	}

	return ErrAccessDenied
}
