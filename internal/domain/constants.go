package domain

// Default scheduling values
const (
	// DefaultSlotIntervalMinutes is the step between candidate slot start times.
	DefaultSlotIntervalMinutes = 30

	// DefaultServiceDurationMinutes is used when a service has no stored duration.
	DefaultServiceDurationMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxNameLength             = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses are the appointment statuses that block calendar time.
// The appointment feed consumed by the availability engine is pre-filtered
// to these statuses; the engine itself does not re-check.
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses are the statuses with no outgoing transitions.
var TerminalStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
}
