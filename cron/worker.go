package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agendly/config"
	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/notification"
	"agendly/services/tasks"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the reminder worker in background and returns the server so the
// caller can shut it down.
func InitReminderWorker(
	ctx context.Context,
	lifecycle appointment.Lifecycle,
	notifier notification.Notifier,
	metrics *utils.BookingMetrics,
	logger *zap.Logger,
) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, HandleReminderTask(lifecycle, notifier, metrics, logger))

	go monitorRedisConnection(ctx, logger)

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil || errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("reminder worker gave up; reminders are disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleReminderTask delivers a reminder if the appointment is still confirmed for the slot the
// reminder was scheduled for.
func HandleReminderTask(
	lifecycle appointment.Lifecycle,
	notifier notification.Notifier,
	metrics *utils.BookingMetrics,
	logger *zap.Logger,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return fmt.Errorf("decode reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		appt, err := lifecycle.Get(ctx, p.StoreID, p.AppointmentID)
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			logger.Info("reminder dropped, appointment gone", zap.String("appointmentID", p.AppointmentID))
			return nil
		}
		if err != nil {
			return err
		}
		if appt.Status != models.StatusConfirmed || appt.Date != p.Date || appt.Time != p.Time {
			logger.Info("reminder dropped, appointment changed",
				zap.String("appointmentID", p.AppointmentID),
				zap.String("status", string(appt.Status)))
			return nil
		}

		if err := notifier.NotifyCustomer(ctx, p); err != nil {
			metrics.ObserveReminder("failed")
			logger.Error("failed to send reminder", zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return err
		}
		metrics.ObserveReminder("sent")
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to surface failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				logger.Warn("reminder queue redis unreachable", zap.Error(err))
			}
		}
	}
}
