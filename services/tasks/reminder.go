package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		// One reminder per appointment slot, however often it is re-confirmed.
		asynq.TaskID(fmt.Sprintf("reminder:%s:%s:%s", payload.AppointmentID, payload.Date, payload.Time)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// StartsAt resolves an appointment's date and time in loc.
func StartsAt(appt models.Appointment, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(utils.DateLayout+" "+utils.ClockLayout, appt.Date+" "+appt.Time, loc)
}

// ReminderScheduler enqueues a reminder whenever an appointment becomes confirmed.
type ReminderScheduler struct {
	Client   Enqueuer
	Lead     time.Duration
	Location *time.Location
	Metrics  *utils.BookingMetrics
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewReminderScheduler(client Enqueuer, lead time.Duration, loc *time.Location, metrics *utils.BookingMetrics, logger *zap.Logger) *ReminderScheduler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderScheduler{
		Client:   client,
		Lead:     lead,
		Location: loc,
		Metrics:  metrics,
		Logger:   logger,
		Now:      time.Now,
	}
}

// OnAppointmentEvent implements appointment.Observer.
func (s *ReminderScheduler) OnAppointmentEvent(ctx context.Context, evt appointment.Event) error {
	if evt.Type != appointment.EventStatusChanged || evt.Appointment.Status != models.StatusConfirmed {
		return nil
	}
	appt := evt.Appointment

	start, err := StartsAt(appt, s.Location)
	if err != nil {
		return fmt.Errorf("reminder for appointment %s: %w", appt.ID, err)
	}
	fireAt := start.Add(-s.Lead)
	if !fireAt.After(s.Now()) {
		s.Metrics.ObserveReminder("skipped")
		s.Logger.Debug("reminder time already passed",
			zap.String("appointmentID", appt.ID),
			zap.Time("fireAt", fireAt))
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		AppointmentID: appt.ID,
		StoreID:       appt.StoreID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		ServiceName:   appt.ServiceName,
		Date:          appt.Date,
		Time:          appt.Time,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("reminder for appointment %s: %w", appt.ID, err)
	}

	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue reminder for appointment %s: %w", appt.ID, err)
	}
	s.Metrics.ObserveReminder("scheduled")
	s.Logger.Info("reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
