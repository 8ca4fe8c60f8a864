package domain

import (
	"time"

	"github.com/glamdesk/salon-booking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ValidStatuses lists every status an appointment may hold.
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValid returns true if the status is a known appointment status.
func (s AppointmentStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses with no outgoing transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Appointment represents a booked service visit.
// Created in pending status by a guest booking action; mutated only through
// the status transition table.
type Appointment struct {
	ID              int64
	GuestID         int64
	SalonID         int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment blocks calendar time.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StartsAt returns the appointment start instant (naive local combination).
func (a *Appointment) StartsAt() time.Time {
	return a.StartTime.At(a.Date)
}

// EndsAt returns the appointment end instant, using the default duration
// when the stored one is missing or non-positive.
func (a *Appointment) EndsAt() time.Time {
	d := a.DurationMinutes
	if d <= 0 {
		d = DefaultServiceDurationMinutes
	}
	return a.StartsAt().Add(time.Duration(d) * time.Minute)
}

// SalonAppointmentsFilter filters salon appointments in storage queries.
type SalonAppointmentsFilter struct {
	SalonID       int64              // required
	Date          *time.Time         // single day (optional)
	ServiceID     *int64             // optional
	Status        *AppointmentStatus // optional
	OnlyOccupying bool               // restrict to pending/confirmed
}
