package models

import "fmt"

// DuplicateSlotError is returned when a weekday already holds the given time.
type DuplicateSlotError struct {
	Weekday int
	Time    string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot %s already exists on weekday %d", e.Time, e.Weekday)
}

// InvalidRangeError is returned by bulk range generation for an empty or inverted range.
type InvalidRangeError struct {
	Start       string
	End         string
	StepMinutes int
}

func (e *InvalidRangeError) Error() string {
	if e.StepMinutes <= 0 {
		return fmt.Sprintf("invalid step of %d minutes", e.StepMinutes)
	}
	return fmt.Sprintf("invalid range: start %s must be before end %s", e.Start, e.End)
}

// InvalidTransitionError is returned when a status change is not allowed.
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change appointment status from %s to %s", e.From, e.To)
}

// BookingConflictError is returned when the requested slot is already occupied.
type BookingConflictError struct {
	StoreID string
	Date    string
	Time    string
}

func (e *BookingConflictError) Error() string {
	return fmt.Sprintf("slot %s %s is already booked", e.Date, e.Time)
}

// NotFoundError is returned when a referenced store resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError reports malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
