package models

import (
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// Request модели

// CreateSalonRequest запрос на создание салона
type CreateSalonRequest struct {
	OwnerID     int64   `json:"-"` // Из токена
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	OpeningTime string  `json:"openingTime"` // "09:00"
	ClosingTime string  `json:"closingTime"` // "18:00"
}

// UpdateSalonRequest запрос на частичное обновление салона
type UpdateSalonRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	OpeningTime *string `json:"openingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
}

// IsEmpty возвращает true, если запрос ничего не меняет
func (r *UpdateSalonRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Address == nil &&
		r.Phone == nil && r.OpeningTime == nil && r.ClosingTime == nil
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// IsEmpty возвращает true, если запрос ничего не меняет
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.DurationMinutes == nil && r.IsActive == nil
}

// Response модели

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Address     string    `json:"address"`
	Phone       *string   `json:"phone,omitempty"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	SalonID         int64     `json:"salonId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"` // Эффективная длительность
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainSalon конвертирует domain модель в DTO
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	if s == nil {
		return nil
	}
	return &SalonResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Address:     s.Address,
		Phone:       s.Phone,
		OpeningTime: s.OpeningTime.String(),
		ClosingTime: s.ClosingTime.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSalonList конвертирует список domain моделей в DTO
func FromDomainSalonList(salons []*domain.Salon) *SalonListResponse {
	resp := &SalonListResponse{Salons: make([]SalonResponse, 0, len(salons))}
	for _, s := range salons {
		if converted := FromDomainSalon(s); converted != nil {
			resp.Salons = append(resp.Salons, *converted)
		}
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		SalonID:         s.SalonID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.Duration(),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if converted := FromDomainService(s); converted != nil {
			resp.Services = append(resp.Services, *converted)
		}
	}
	return resp
}

// ToSalonPatch конвертирует запрос в domain patch.
// Времена уже должны быть провалидированы сервисом.
func (r *UpdateSalonRequest) ToSalonPatch() *domain.SalonPatch {
	patch := &domain.SalonPatch{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
	}
	if r.OpeningTime != nil {
		ts := types.TimeString(*r.OpeningTime)
		patch.OpeningTime = &ts
	}
	if r.ClosingTime != nil {
		ts := types.TimeString(*r.ClosingTime)
		patch.ClosingTime = &ts
	}
	return patch
}

// ToServicePatch конвертирует запрос в domain patch
func (r *UpdateServiceRequest) ToServicePatch() *domain.ServicePatch {
	return &domain.ServicePatch{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}
}
