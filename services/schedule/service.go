// File: services/schedule/service.go
package schedule

import (
	"context"
	"errors"
	"fmt"

	"agendly/database/repository"
	"agendly/models"

	"go.uber.org/zap"
)

// maxSaveAttempts bounds the load-transform-save loop when a concurrent edit wins.
const maxSaveAttempts = 3

func emptySchedule(storeID string) *models.WeeklySchedule {
	s := &models.WeeklySchedule{StoreID: storeID}
	for d := range s.Weekdays {
		s.Weekdays[d] = []string{}
	}
	return s
}

func cloneSchedule(src *models.WeeklySchedule) *models.WeeklySchedule {
	dst := *src
	for d := range src.Weekdays {
		dst.Weekdays[d] = append([]string{}, src.Weekdays[d]...)
	}
	return &dst
}

func (s *DefaultScheduleService) load(ctx context.Context, storeID string) (*models.WeeklySchedule, error) {
	stored, err := s.Repo.Load(ctx, storeID)
	if errors.Is(err, repository.ErrNotFound) {
		return emptySchedule(storeID), nil
	}
	if err != nil {
		return nil, err
	}
	return cloneSchedule(stored), nil
}

// mutate runs transform against the freshly loaded schedule and saves it conditionally on the
// loaded version. transform reports whether it changed anything; unchanged schedules are not
// written.
func (s *DefaultScheduleService) mutate(
	ctx context.Context,
	storeID string,
	transform func(week *models.WeeklySchedule) (bool, error),
) (*models.WeeklySchedule, error) {
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		current, err := s.load(ctx, storeID)
		if err != nil {
			return nil, err
		}
		expected := current.Version

		next := cloneSchedule(current)
		changed, err := transform(next)
		if err != nil {
			return nil, err
		}
		if !changed {
			return current, nil
		}

		err = s.Repo.Save(ctx, next, expected)
		if errors.Is(err, repository.ErrVersionConflict) {
			s.Logger.Warn("schedule changed concurrently, retrying",
				zap.String("storeID", storeID),
				zap.Int("attempt", attempt),
				zap.Int("expectedVersion", expected))
			continue
		}
		if err != nil {
			return nil, err
		}
		return next, nil
	}
	return nil, fmt.Errorf("schedule for store %s kept changing after %d attempts: %w",
		storeID, maxSaveAttempts, repository.ErrVersionConflict)
}

func (s *DefaultScheduleService) GetSlotsForWeekday(ctx context.Context, storeID string, weekday int) ([]string, error) {
	if weekday < 0 || weekday >= models.DaysPerWeek {
		return []string{}, nil
	}
	week, err := s.load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return week.SlotsFor(weekday), nil
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, storeID string) (*models.WeeklySchedule, error) {
	return s.load(ctx, storeID)
}

func (s *DefaultScheduleService) SetWeek(
	ctx context.Context,
	storeID string,
	weekdays [models.DaysPerWeek][]string,
) (*models.WeeklySchedule, error) {
	var week [models.DaysPerWeek][]string
	for d, slots := range weekdays {
		week[d] = []string{}
		for _, t := range slots {
			if err := validateClock("weekdays", t); err != nil {
				return nil, err
			}
			next, err := addSlot(week[d], d, t)
			if err != nil {
				return nil, err
			}
			week[d] = next
		}
	}
	return s.mutate(ctx, storeID, func(current *models.WeeklySchedule) (bool, error) {
		current.Weekdays = week
		return true, nil
	})
}

func (s *DefaultScheduleService) AddSlot(ctx context.Context, storeID string, weekday int, t string) (*models.WeeklySchedule, error) {
	if err := validateWeekday(weekday); err != nil {
		return nil, err
	}
	if err := validateClock("time", t); err != nil {
		return nil, err
	}
	return s.mutate(ctx, storeID, func(week *models.WeeklySchedule) (bool, error) {
		slots, err := addSlot(week.Weekdays[weekday], weekday, t)
		if err != nil {
			return false, err
		}
		week.Weekdays[weekday] = slots
		return true, nil
	})
}

func (s *DefaultScheduleService) RemoveSlot(ctx context.Context, storeID string, weekday int, t string) (*models.WeeklySchedule, error) {
	if err := validateWeekday(weekday); err != nil {
		return nil, err
	}
	if err := validateClock("time", t); err != nil {
		return nil, err
	}
	return s.mutate(ctx, storeID, func(week *models.WeeklySchedule) (bool, error) {
		slots, changed := removeSlot(week.Weekdays[weekday], t)
		week.Weekdays[weekday] = slots
		return changed, nil
	})
}

func (s *DefaultScheduleService) ReplaceSlot(
	ctx context.Context,
	storeID string,
	weekday int,
	oldTime, newTime string,
) (*models.WeeklySchedule, error) {
	if err := validateWeekday(weekday); err != nil {
		return nil, err
	}
	if err := validateClock("oldTime", oldTime); err != nil {
		return nil, err
	}
	if err := validateClock("newTime", newTime); err != nil {
		return nil, err
	}
	return s.mutate(ctx, storeID, func(week *models.WeeklySchedule) (bool, error) {
		before := week.Weekdays[weekday]
		slots, err := replaceSlot(before, weekday, oldTime, newTime)
		if err != nil {
			return false, err
		}
		week.Weekdays[weekday] = slots
		return !equalSlots(before, slots), nil
	})
}

func (s *DefaultScheduleService) ApplyBulkRange(
	ctx context.Context,
	storeID string,
	req models.BulkRangeRequest,
) (*models.WeeklySchedule, error) {
	if len(req.Weekdays) == 0 {
		return nil, models.NewValidationError("weekdays", "at least one weekday is required")
	}
	for _, d := range req.Weekdays {
		if err := validateWeekday(d); err != nil {
			return nil, err
		}
	}
	slots, err := GenerateRange(req.Start, req.End, req.StepMinutes)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, storeID, func(week *models.WeeklySchedule) (bool, error) {
		for _, d := range req.Weekdays {
			week.Weekdays[d] = append([]string{}, slots...)
		}
		return true, nil
	})
}

func (s *DefaultScheduleService) InitDefaults(ctx context.Context, storeID string) (*models.WeeklySchedule, error) {
	return s.mutate(ctx, storeID, func(week *models.WeeklySchedule) (bool, error) {
		if week.Version > 0 {
			return false, nil
		}
		week.Weekdays = DefaultWeek()
		return true, nil
	})
}

func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, storeID string) error {
	if err := s.Repo.Delete(ctx, storeID); err != nil {
		return err
	}
	s.Logger.Info("schedule deleted", zap.String("storeID", storeID))
	return nil
}

func equalSlots(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
