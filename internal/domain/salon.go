package domain

import (
	"time"

	"github.com/glamdesk/salon-booking/pkg/types"
)

// Salon represents a salon in the catalog.
type Salon struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description *string
	Address     string
	Phone       *string
	OpeningTime types.TimeString
	ClosingTime types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessHours returns the salon's daily opening window.
func (s *Salon) BusinessHours() BusinessHours {
	return BusinessHours{Opening: s.OpeningTime, Closing: s.ClosingTime}
}

// IsOwnedBy returns true if the user owns this salon.
func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// SalonPatch describes a partial salon update. Only non-nil fields are
// written; the storage layer never assembles field lists ad hoc.
type SalonPatch struct {
	Name        *string
	Description *string
	Address     *string
	Phone       *string
	OpeningTime *types.TimeString
	ClosingTime *types.TimeString
}

// IsEmpty returns true if the patch changes nothing.
func (p *SalonPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Address == nil &&
		p.Phone == nil && p.OpeningTime == nil && p.ClosingTime == nil
}

// Apply copies the non-nil patch fields onto the salon.
func (p *SalonPatch) Apply(s *Salon) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = p.Phone
	}
	if p.OpeningTime != nil {
		s.OpeningTime = *p.OpeningTime
	}
	if p.ClosingTime != nil {
		s.ClosingTime = *p.ClosingTime
	}
}
