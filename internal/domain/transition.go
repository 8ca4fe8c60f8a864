package domain

import "fmt"

// Role is the acting principal's relationship to an appointment.
type Role string

const (
	// RoleOwner is the owner of the salon the appointment belongs to.
	RoleOwner Role = "owner"
	// RoleGuest is the guest who booked the appointment.
	RoleGuest Role = "guest"
)

// Actor is the authenticated principal attempting a status transition.
type Actor struct {
	UserID int64
	Role   Role
}

// InvalidTransitionError reports a status transition rejected by the table.
// It carries the attempted current/target states and the actor's role so the
// caller can surface a precise validation failure.
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
	Role Role
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("domain: transition %s -> %s not allowed for role %s", e.From, e.To, e.Role)
}

// transitions is the full status transition table, keyed by current status
// and acting role. Terminal statuses have no entries.
var transitions = map[AppointmentStatus]map[Role][]AppointmentStatus{
	StatusPending: {
		RoleOwner: {StatusConfirmed, StatusCancelled},
		RoleGuest: {StatusCancelled},
	},
	StatusConfirmed: {
		RoleOwner: {StatusCompleted, StatusCancelled},
		RoleGuest: {StatusCancelled},
	},
}

// ValidateTransition checks the transition table for (current, target, role).
// Any transition not present in the table fails with *InvalidTransitionError.
func ValidateTransition(current, target AppointmentStatus, role Role) error {
	for _, allowed := range transitions[current][role] {
		if allowed == target {
			return nil
		}
	}
	return &InvalidTransitionError{From: current, To: target, Role: role}
}

// AllowedTransitions returns the target statuses the role may move the
// appointment to from its current status.
func AllowedTransitions(current AppointmentStatus, role Role) []AppointmentStatus {
	return transitions[current][role]
}
