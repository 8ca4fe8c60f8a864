package create_appointment

import (
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	createAppointment "github.com/glamdesk/salon-booking/internal/usecase/create_appointment"
	"github.com/glamdesk/salon-booking/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID   int64   `json:"salonId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2026-09-15"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	GuestID         int64   `json:"guestId"`
	SalonID         int64   `json:"salonId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(guestID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		GuestID:   guestID,
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		GuestID:         resp.GuestID,
		SalonID:         resp.SalonID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
