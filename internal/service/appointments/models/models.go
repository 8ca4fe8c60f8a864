package models

import (
	"errors"
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе в фильтре
var ErrInvalidStatus = errors.New("invalid appointment status")

// Request модели

// GetGuestAppointmentsRequest запрос истории записей гостя
type GetGuestAppointmentsRequest struct {
	GuestID int64   `json:"guestId"`
	Status  *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetSalonAppointmentsRequest запрос расписания салона.
// Доступно только владельцу салона.
type GetSalonAppointmentsRequest struct {
	SalonID       int64      `json:"salonId"`
	UserID        int64      `json:"userId"`
	Date          *time.Time `json:"date,omitempty"`          // Конкретный день (опционально)
	ServiceID     *int64     `json:"serviceId,omitempty"`     // Фильтр по услуге (опционально)
	Status        *string    `json:"status,omitempty"`        // Фильтр по статусу (опционально)
	OnlyOccupying bool       `json:"onlyOccupying,omitempty"` // Только pending/confirmed
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetSalonAppointmentsRequest) ToDomainFilter() (domain.SalonAppointmentsFilter, error) {
	filter := domain.SalonAppointmentsFilter{
		SalonID:       r.SalonID,
		Date:          r.Date,
		ServiceID:     r.ServiceID,
		OnlyOccupying: r.OnlyOccupying,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	GuestID         int64  `json:"guestId"`
	SalonID         int64  `json:"salonId"`
	ServiceID       int64  `json:"serviceId"`
	Date            string `json:"date"`      // "2026-09-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные услуги на момент записи
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:              a.ID,
		GuestID:         a.GuestID,
		SalonID:         a.SalonID,
		ServiceID:       a.ServiceID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if converted := FromDomainAppointment(a); converted != nil {
			resp.Appointments = append(resp.Appointments, *converted)
		}
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
