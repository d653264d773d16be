// File: services/appointment/observer.go
package appointment

import (
	"context"

	"agendly/models"
	"agendly/utils"
)

// EventType names an appointment change.
type EventType string

const (
	EventCreated       EventType = "created"
	EventStatusChanged EventType = "status_changed"
	EventDeleted       EventType = "deleted"
	// EventStoreCleared carries only Appointment.StoreID.
	EventStoreCleared  EventType = "store_cleared"
)

// Event describes one committed appointment change.
type Event struct {
	Type           EventType
	Appointment    models.Appointment
	PreviousStatus models.AppointmentStatus // set for EventStatusChanged
}

// Observer is notified synchronously after every committed change. Returned errors are logged
// and never undo the change.
type Observer interface {
	OnAppointmentEvent(ctx context.Context, evt Event) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, evt Event) error

func (f ObserverFunc) OnAppointmentEvent(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// MetricsObserver feeds lifecycle events into the booking metrics.
type MetricsObserver struct {
	Metrics *utils.BookingMetrics
}

func (o MetricsObserver) OnAppointmentEvent(_ context.Context, evt Event) error {
	switch evt.Type {
	case EventCreated:
		o.Metrics.ObserveBooking(evt.Appointment.Source)
	case EventStatusChanged:
		o.Metrics.ObserveTransition(string(evt.PreviousStatus), string(evt.Appointment.Status))
	case EventDeleted:
		o.Metrics.ObserveDeletion()
	}
	return nil
}
