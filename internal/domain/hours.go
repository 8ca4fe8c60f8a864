package domain

import (
	"errors"
	"time"

	"github.com/glamdesk/salon-booking/pkg/types"
)

// ErrInvalidBusinessHours is returned when opening time is not strictly
// before closing time.
var ErrInvalidBusinessHours = errors.New("domain: opening time must be before closing time")

// BusinessHours represents a salon's daily opening window.
type BusinessHours struct {
	Opening types.TimeString
	Closing types.TimeString
}

// NewBusinessHours parses the stored opening/closing strings and validates
// the window. Malformed strings fail with types.ErrMalformedTime.
func NewBusinessHours(opening, closing string) (BusinessHours, error) {
	o, err := types.NewTimeStringFromString(opening)
	if err != nil {
		return BusinessHours{}, err
	}
	c, err := types.NewTimeStringFromString(closing)
	if err != nil {
		return BusinessHours{}, err
	}

	h := BusinessHours{Opening: o, Closing: c}
	if err := h.Validate(); err != nil {
		return BusinessHours{}, err
	}
	return h, nil
}

// Validate enforces the invariant: opening strictly before closing.
func (h BusinessHours) Validate() error {
	if err := h.Opening.Validate(); err != nil {
		return err
	}
	if err := h.Closing.Validate(); err != nil {
		return err
	}
	if !h.Opening.IsBefore(h.Closing) {
		return ErrInvalidBusinessHours
	}
	return nil
}

// WindowFor combines the opening window with a calendar date.
// The combination is naive local time: no timezone offset is applied,
// which assumes salons and their clients share one implicit zone.
func (h BusinessHours) WindowFor(date time.Time) (time.Time, time.Time) {
	return h.Opening.At(date), h.Closing.At(date)
}
