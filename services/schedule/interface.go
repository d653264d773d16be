package schedule

import (
	"context"
	"fmt"

	scheduleRepo "agendly/database/repository/schedule"
	"agendly/models"

	"go.uber.org/zap"
)

// ScheduleService manages a store's weekly slot configuration.
type ScheduleService interface {
	// GetSlotsForWeekday returns the sorted slots of a weekday. A store without a schedule
	// or an out-of-range weekday yields an empty list.
	GetSlotsForWeekday(ctx context.Context, storeID string, weekday int) ([]string, error)
	GetSchedule(ctx context.Context, storeID string) (*models.WeeklySchedule, error)
	// SetWeek replaces every weekday at once.
	SetWeek(ctx context.Context, storeID string, weekdays [models.DaysPerWeek][]string) (*models.WeeklySchedule, error)
	AddSlot(ctx context.Context, storeID string, weekday int, t string) (*models.WeeklySchedule, error)
	RemoveSlot(ctx context.Context, storeID string, weekday int, t string) (*models.WeeklySchedule, error)
	ReplaceSlot(ctx context.Context, storeID string, weekday int, oldTime, newTime string) (*models.WeeklySchedule, error)
	ApplyBulkRange(ctx context.Context, storeID string, req models.BulkRangeRequest) (*models.WeeklySchedule, error)
	InitDefaults(ctx context.Context, storeID string) (*models.WeeklySchedule, error)
	DeleteSchedule(ctx context.Context, storeID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Logger *zap.Logger
}

func NewDefaultScheduleService(repo scheduleRepo.ScheduleRepository, logger *zap.Logger) (*DefaultScheduleService, error) {
	if repo == nil {
		return nil, fmt.Errorf("schedule service initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultScheduleService{Repo: repo, Logger: logger}, nil
}
