package get_availability

import (
	"time"

	"github.com/glamdesk/salon-booking/internal/domain"
	getAvailability "github.com/glamdesk/salon-booking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SalonID       int64         `json:"salonId"`
	Date          string        `json:"date"`
	BusinessHours BusinessHours `json:"businessHours"`
	Slots         []Slot        `json:"slots"`
}

// BusinessHours рабочие часы салона
type BusinessHours struct {
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// Slot модель доступного слота
type Slot struct {
	StartTime       string `json:"startTime"`     // "14:30"
	FormattedTime   string `json:"formattedTime"` // "2:30 PM"
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime:       slot.StartTime.String(),
			FormattedTime:   slot.FormattedTime,
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailabilityResponse{
		SalonID: resp.SalonID,
		Date:    resp.Date.Format(domain.DateFormat),
		BusinessHours: BusinessHours{
			OpeningTime: resp.BusinessHours.Opening.String(),
			ClosingTime: resp.BusinessHours.Closing.String(),
		},
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(salonID int64, dateStr string, serviceID *int64) (getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return getAvailability.Request{}, err
	}

	return getAvailability.Request{
		SalonID:   salonID,
		Date:      date,
		ServiceID: serviceID,
	}, nil
}
