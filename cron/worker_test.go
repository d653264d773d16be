package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"agendly/models"
	"agendly/services/appointment"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLifecycle struct {
	appointment.Lifecycle
	appt *models.Appointment
}

func (s *stubLifecycle) Get(_ context.Context, _ string, id string) (*models.Appointment, error) {
	if s.appt == nil {
		return nil, &models.NotFoundError{Resource: "appointment", ID: id}
	}
	return s.appt, nil
}

type countingNotifier struct {
	sent int
	err  error
}

func (c *countingNotifier) NotifyCustomer(context.Context, models.ReminderPayload) error {
	c.sent++
	return c.err
}

func reminderTask(t *testing.T) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(models.ReminderPayload{AppointmentID: "appt-1", StoreID: "store-1", Date: "2025-01-07", Time: "09:00"})
	require.NoError(t, err)
	return asynq.NewTask("appointment:reminder", b)
}

func TestHandleReminderTask(t *testing.T) {
	confirmed := &models.Appointment{ID: "appt-1", StoreID: "store-1", Date: "2025-01-07", Time: "09:00", Status: models.StatusConfirmed}
	cancelled := *confirmed
	cancelled.Status = models.StatusCancelled

	tests := []struct {
		name     string
		appt     *models.Appointment
		wantSent int
	}{
		{name: "still confirmed", appt: confirmed, wantSent: 1},
		{name: "cancelled since", appt: &cancelled, wantSent: 0},
		{name: "deleted since", appt: nil, wantSent: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &countingNotifier{}
			handler := HandleReminderTask(&stubLifecycle{appt: tt.appt}, notifier, nil, zap.NewNop())

			require.NoError(t, handler(context.Background(), reminderTask(t)))
			assert.Equal(t, tt.wantSent, notifier.sent)
		})
	}
}

func TestHandleReminderTaskBadPayloadSkipsRetry(t *testing.T) {
	handler := HandleReminderTask(&stubLifecycle{}, &countingNotifier{}, nil, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask("appointment:reminder", []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleReminderTaskNotifierFailureRetries(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", StoreID: "store-1", Date: "2025-01-07", Time: "09:00", Status: models.StatusConfirmed}
	handler := HandleReminderTask(&stubLifecycle{appt: appt}, &countingNotifier{err: errors.New("gateway down")}, nil, zap.NewNop())

	err := handler(context.Background(), reminderTask(t))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}
