package notification

import (
	"context"

	"agendly/models"

	"go.uber.org/zap"
)

// Notifier delivers customer-facing messages. Delivery channels (SMS, email) live outside this
// service; the shipped implementation only logs.
type Notifier interface {
	NotifyCustomer(ctx context.Context, reminder models.ReminderPayload) error
}

// LogNotifier writes reminders to the structured log.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) NotifyCustomer(_ context.Context, reminder models.ReminderPayload) error {
	n.Logger.Info("appointment reminder",
		zap.String("storeID", reminder.StoreID),
		zap.String("appointmentID", reminder.AppointmentID),
		zap.String("customer", reminder.CustomerName),
		zap.String("phone", reminder.CustomerPhone),
		zap.String("service", reminder.ServiceName),
		zap.String("date", reminder.Date),
		zap.String("time", reminder.Time))
	return nil
}
