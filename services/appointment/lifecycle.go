// File: services/appointment/lifecycle.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agendly/database/repository"
	"agendly/models"
	"agendly/utils"

	"go.uber.org/zap"
)

func (l *DefaultLifecycle) Create(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	if input.StoreID == "" {
		return nil, models.NewValidationError("storeId", "is required")
	}
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, models.NewValidationError("customerName", "is required")
	}
	if _, err := utils.ParseDate(input.Date); err != nil {
		return nil, models.NewValidationError("date", "%v", err)
	}
	if !utils.IsClock(input.Time) {
		return nil, models.NewValidationError("time", "invalid time %q: expected HH:MM", input.Time)
	}
	if input.ServiceID == "" {
		return nil, models.NewValidationError("serviceId", "is required")
	}

	svc, err := l.Services.FindByID(ctx, input.StoreID, input.ServiceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &models.NotFoundError{Resource: "service", ID: input.ServiceID}
	}
	if err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = models.SourceOwner
	}
	// Hidden services stay bookable from the owner console only.
	if !svc.IsActive && source == models.SourcePublic {
		return nil, &models.NotFoundError{Resource: "service", ID: input.ServiceID}
	}
	now := l.Now().UTC()
	appt := &models.Appointment{
		ID:              l.NewID(),
		StoreID:         input.StoreID,
		CustomerName:    name,
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServiceDuration: svc.Duration,
		ServicePrice:    svc.Price,
		Currency:        svc.Currency,
		Date:            input.Date,
		Time:            input.Time,
		Status:          models.StatusPending,
		Source:          source,
		Notes:           strings.TrimSpace(input.Notes),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := l.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, &models.BookingConflictError{StoreID: appt.StoreID, Date: appt.Date, Time: appt.Time}
		}
		return nil, err
	}

	l.Logger.Info("appointment created",
		zap.String("storeID", appt.StoreID),
		zap.String("appointmentID", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("source", appt.Source))
	l.notify(ctx, Event{Type: EventCreated, Appointment: *appt})
	return appt, nil
}

func (l *DefaultLifecycle) Transition(
	ctx context.Context,
	storeID, id string,
	to models.AppointmentStatus,
) (*models.Appointment, error) {
	if !to.Valid() {
		return nil, models.NewValidationError("status", "unknown status %q", to)
	}

	current, err := l.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	// One reload on a lost race; the transition is re-validated against the fresh status.
	for attempt := 0; attempt < 2; attempt++ {
		if current.Status == to {
			return current, nil
		}
		if err := ValidateTransition(current.Status, to); err != nil {
			return nil, err
		}

		updated, err := l.Appointments.UpdateStatus(ctx, storeID, id, current.Status, to)
		switch {
		case err == nil:
			l.Logger.Info("appointment status changed",
				zap.String("storeID", storeID),
				zap.String("appointmentID", id),
				zap.String("from", string(current.Status)),
				zap.String("to", string(to)))
			l.notify(ctx, Event{Type: EventStatusChanged, Appointment: *updated, PreviousStatus: current.Status})
			return updated, nil
		case errors.Is(err, repository.ErrNotFound):
			return nil, &models.NotFoundError{Resource: "appointment", ID: id}
		case errors.Is(err, repository.ErrVersionConflict):
			if current, err = l.Get(ctx, storeID, id); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("appointment %s changed concurrently: %w", id, repository.ErrVersionConflict)
}

func (l *DefaultLifecycle) Delete(ctx context.Context, storeID, id string) error {
	appt, err := l.Get(ctx, storeID, id)
	if err != nil {
		return err
	}
	if err := l.Appointments.Delete(ctx, storeID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.NotFoundError{Resource: "appointment", ID: id}
		}
		return err
	}

	l.Logger.Info("appointment deleted", zap.String("storeID", storeID), zap.String("appointmentID", id))
	l.notify(ctx, Event{Type: EventDeleted, Appointment: *appt})
	return nil
}

func (l *DefaultLifecycle) DeleteStore(ctx context.Context, storeID string) (int64, error) {
	if storeID == "" {
		return 0, models.NewValidationError("storeId", "is required")
	}
	n, err := l.Appointments.DeleteByStore(ctx, storeID)
	if err != nil {
		return 0, err
	}

	l.Logger.Info("store appointments deleted", zap.String("storeID", storeID), zap.Int64("count", n))
	l.notify(ctx, Event{Type: EventStoreCleared, Appointment: models.Appointment{StoreID: storeID}})
	return n, nil
}

func (l *DefaultLifecycle) Get(ctx context.Context, storeID, id string) (*models.Appointment, error) {
	appt, err := l.Appointments.GetByID(ctx, storeID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &models.NotFoundError{Resource: "appointment", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (l *DefaultLifecycle) ListByDate(ctx context.Context, storeID, date string) ([]models.Appointment, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, models.NewValidationError("date", "%v", err)
	}
	return l.Appointments.FindByStoreAndDate(ctx, storeID, date)
}

func (l *DefaultLifecycle) ListRange(ctx context.Context, storeID, from, to string) ([]models.Appointment, error) {
	start, err := utils.ParseDate(from)
	if err != nil {
		return nil, models.NewValidationError("from", "%v", err)
	}
	end, err := utils.ParseDate(to)
	if err != nil {
		return nil, models.NewValidationError("to", "%v", err)
	}
	if !end.After(start) {
		return nil, models.NewValidationError("to", "must be after %s", from)
	}
	return l.Appointments.FindByStoreAndDateRange(ctx, storeID, from, to)
}

func (l *DefaultLifecycle) notify(ctx context.Context, evt Event) {
	for _, o := range l.Observers {
		if err := o.OnAppointmentEvent(ctx, evt); err != nil {
			l.Logger.Error("appointment observer failed",
				zap.String("event", string(evt.Type)),
				zap.String("appointmentID", evt.Appointment.ID),
				zap.Error(err))
		}
	}
}
