package appointment

import "agendly/models"

// allowedTransitions lists the reachable targets of every status. completed and cancelled are
// terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled, models.StatusPending},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a ValidationError for an unknown target and an
// InvalidTransitionError for a known but unreachable one.
func ValidateTransition(from, to models.AppointmentStatus) error {
	if !to.Valid() {
		return models.NewValidationError("status", "unknown status %q", to)
	}
	if !CanTransition(from, to) {
		return &models.InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s models.AppointmentStatus) bool {
	return len(allowedTransitions[s]) == 0
}
