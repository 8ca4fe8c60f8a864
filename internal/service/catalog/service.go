package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glamdesk/salon-booking/internal/domain"
	salonRepo "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	serviceRepo "github.com/glamdesk/salon-booking/internal/infra/storage/service"
	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// Service сервис каталога: салоны и их услуги
type Service struct {
	salonRepo   SalonRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(salonRepo SalonRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		salonRepo:   salonRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateSalon создает салон. Рабочие часы проверяются на инвариант
// opening < closing до записи.
func (s *Service) CreateSalon(ctx context.Context, req *models.CreateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("CreateSalon: owner=%d, name=%s", req.OwnerID, req.Name)

	if err := validateCreateSalon(req); err != nil {
		s.logger.Warn("CreateSalon: validation failed: %v", err)
		return nil, err
	}

	hours, err := domain.NewBusinessHours(req.OpeningTime, req.ClosingTime)
	if err != nil {
		s.logger.Warn("CreateSalon: invalid business hours %s-%s: %v", req.OpeningTime, req.ClosingTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	salon := &domain.Salon{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		Phone:       req.Phone,
		OpeningTime: hours.Opening,
		ClosingTime: hours.Closing,
	}

	created, err := s.salonRepo.Create(ctx, salon)
	if err != nil {
		s.logger.Error("CreateSalon: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSalon: created salon id=%d", created.ID)
	return models.FromDomainSalon(created), nil
}

// GetSalon получает салон по ID. Публичная операция.
func (s *Service) GetSalon(ctx context.Context, id int64) (*models.SalonResponse, error) {
	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon id=%d not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSalon - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSalon(salon), nil
}

// ListSalons возвращает все салоны. Публичная операция.
func (s *Service) ListSalons(ctx context.Context) (*models.SalonListResponse, error) {
	salons, err := s.salonRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSalons: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSalons - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSalonList(salons), nil
}

// UpdateSalon частично обновляет салон. Доступно только владельцу.
// Инвариант рабочих часов перепроверяется на каждой записи: патч
// применяется к текущему состоянию и итоговое окно валидируется.
func (s *Service) UpdateSalon(ctx context.Context, id, userID int64, req *models.UpdateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("UpdateSalon: salon=%d, user=%d", id, userID)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: update request is empty", ErrInvalidInput)
	}

	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("UpdateSalon: salon id=%d not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("UpdateSalon: repository error for salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSalon - repository error: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(userID) {
		s.logger.Warn("UpdateSalon: user=%d does not own salon id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if err := validateUpdateSalon(req); err != nil {
		s.logger.Warn("UpdateSalon: validation failed: %v", err)
		return nil, err
	}

	patch := req.ToSalonPatch()

	// Применяем патч к копии и проверяем итоговое окно
	updated := *salon
	patch.Apply(&updated)
	if err := updated.BusinessHours().Validate(); err != nil {
		s.logger.Warn("UpdateSalon: resulting hours %s-%s invalid: %v",
			updated.OpeningTime, updated.ClosingTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.salonRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("UpdateSalon: failed to update salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSalon: updated salon id=%d", id)
	return models.FromDomainSalon(&updated), nil
}

// CreateService создает услугу в салоне. Доступно только владельцу.
func (s *Service) CreateService(ctx context.Context, salonID, userID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: salon=%d, user=%d, name=%s", salonID, userID, req.Name)

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("CreateService: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("CreateService: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(userID) {
		s.logger.Warn("CreateService: user=%d does not own salon id=%d", userID, salonID)
		return nil, ErrAccessDenied
	}

	if err := validateCreateService(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	service := &domain.Service{
		SalonID:         salonID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d in salon id=%d", created.ID, salonID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу салона. Публичная операция.
func (s *Service) GetService(ctx context.Context, salonID, serviceID int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetBySalonAndID(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found in salon id=%d", serviceID, salonID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

// ListServices возвращает услуги салона.
// Владелец видит все услуги, остальные — только активные.
func (s *Service) ListServices(ctx context.Context, salonID int64, userID int64) (*models.ServiceListResponse, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("ListServices: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListServices: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	onlyActive := !salon.IsOwnedBy(userID)

	services, err := s.serviceRepo.ListBySalon(ctx, salonID, onlyActive)
	if err != nil {
		s.logger.Error("ListServices: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// UpdateService частично обновляет услугу. Доступно только владельцу салона.
func (s *Service) UpdateService(ctx context.Context, salonID, serviceID, userID int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: salon=%d, service=%d, user=%d", salonID, serviceID, userID)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: update request is empty", ErrInvalidInput)
	}

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("UpdateService: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(userID) {
		s.logger.Warn("UpdateService: user=%d does not own salon id=%d", userID, salonID)
		return nil, ErrAccessDenied
	}

	service, err := s.serviceRepo.GetBySalonAndID(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found in salon id=%d", serviceID, salonID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if err := validateUpdateService(req); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	patch := req.ToServicePatch()
	if err := s.serviceRepo.Update(ctx, serviceID, patch); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: failed to update service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	updated := *service
	patch.Apply(&updated)

	s.logger.Info("UpdateService: updated service id=%d", serviceID)
	return models.FromDomainService(&updated), nil
}

// Валидация

func validateCreateSalon(req *models.CreateSalonRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	return nil
}

func validateUpdateSalon(req *models.UpdateSalonRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) == "" {
		return fmt.Errorf("%w: address must not be empty", ErrInvalidInput)
	}
	if req.OpeningTime != nil {
		if _, err := types.NewTimeStringFromString(*req.OpeningTime); err != nil {
			return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
		}
	}
	if req.ClosingTime != nil {
		if _, err := types.NewTimeStringFromString(*req.ClosingTime); err != nil {
			return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

func validateCreateService(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return err
	}
	return nil
}

func validateUpdateService(req *models.UpdateServiceRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return err
	}
	return nil
}

func validateDuration(duration *int) error {
	if duration == nil {
		return nil
	}
	if *duration < domain.MinServiceDurationMinutes || *duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
