package availability

import (
	"context"
	"fmt"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/schedule"
	"agendly/utils"

	"go.uber.org/zap"
)

// MaxRangeDays caps GetRangeAvailability.
const MaxRangeDays = 31

// AvailabilityService reconciles schedules with bookings and books free slots.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, storeID, date string) (*models.DayAvailability, error)
	GetRangeAvailability(ctx context.Context, storeID, from string, days int) ([]models.DayAvailability, error)
	// BookSlot creates an appointment at date/time if the slot is free at check time.
	BookSlot(ctx context.Context, storeID, date, time string, draft models.AppointmentInput) (*models.Appointment, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Schedule  schedule.ScheduleService
	Lifecycle appointment.Lifecycle
	Policy    SlotPolicy
	Metrics   *utils.BookingMetrics
	Logger    *zap.Logger
}

func NewDefaultAvailabilityService(
	scheduleSvc schedule.ScheduleService,
	lifecycle appointment.Lifecycle,
	policy SlotPolicy,
	metrics *utils.BookingMetrics,
	logger *zap.Logger,
) (*DefaultAvailabilityService, error) {
	if scheduleSvc == nil || lifecycle == nil {
		return nil, fmt.Errorf("availability service initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAvailabilityService{
		Schedule:  scheduleSvc,
		Lifecycle: lifecycle,
		Policy:    policy,
		Metrics:   metrics,
		Logger:    logger,
	}, nil
}
