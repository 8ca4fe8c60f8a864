package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon id must be positive, got %d", ErrInvalidInput, req.SalonID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive, got %d", ErrInvalidInput, *req.ServiceID)
	}

	return nil
}
