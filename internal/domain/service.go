package domain

import "time"

// Service represents a service offered by a salon.
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes *int // NULL = default duration
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the service duration in minutes, falling back to
// DefaultServiceDurationMinutes when no duration is stored.
func (s *Service) Duration() int {
	if s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *s.DurationMinutes
}

// BelongsTo returns true if the service belongs to the given salon.
func (s *Service) BelongsTo(salonID int64) bool {
	return s.SalonID == salonID
}

// ServicePatch describes a partial service update.
type ServicePatch struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

// IsEmpty returns true if the patch changes nothing.
func (p *ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.DurationMinutes == nil && p.IsActive == nil
}

// Apply copies the non-nil patch fields onto the service.
func (p *ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = p.DurationMinutes
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
