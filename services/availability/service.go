// File: services/availability/service.go
package availability

import (
	"context"
	"errors"

	"agendly/models"
	"agendly/utils"

	"go.uber.org/zap"
)

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, storeID, date string) (*models.DayAvailability, error) {
	weekday, err := utils.WeekdayOf(date)
	if err != nil {
		return nil, models.NewValidationError("date", "%v", err)
	}

	slots, err := s.Schedule.GetSlotsForWeekday(ctx, storeID, weekday)
	if err != nil {
		return nil, err
	}
	appointments, err := s.Lifecycle.ListByDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}

	return &models.DayAvailability{
		Date:    date,
		Weekday: weekday,
		Slots:   ComputeSlots(slots, appointments, s.Policy),
	}, nil
}

func (s *DefaultAvailabilityService) GetRangeAvailability(
	ctx context.Context,
	storeID, from string,
	days int,
) ([]models.DayAvailability, error) {
	start, err := utils.ParseDate(from)
	if err != nil {
		return nil, models.NewValidationError("date", "%v", err)
	}
	if days < 1 || days > MaxRangeDays {
		return nil, models.NewValidationError("days", "must be between 1 and %d, got %d", MaxRangeDays, days)
	}

	out := make([]models.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		day, err := s.GetAvailability(ctx, storeID, utils.FormatDate(start.AddDate(0, 0, i)))
		if err != nil {
			return nil, err
		}
		out = append(out, *day)
	}
	return out, nil
}

func (s *DefaultAvailabilityService) BookSlot(
	ctx context.Context,
	storeID, date, time string,
	draft models.AppointmentInput,
) (*models.Appointment, error) {
	if !utils.IsClock(time) {
		return nil, models.NewValidationError("time", "invalid time %q: expected HH:MM", time)
	}

	day, err := s.GetAvailability(ctx, storeID, date)
	if err != nil {
		return nil, err
	}
	for _, slot := range day.Slots {
		if slot.Time == time && slot.Booked {
			s.Metrics.ObserveConflict(draft.Source)
			return nil, &models.BookingConflictError{StoreID: storeID, Date: date, Time: time}
		}
	}

	draft.StoreID = storeID
	draft.Date = date
	draft.Time = time
	appt, err := s.Lifecycle.Create(ctx, draft)
	if err != nil {
		var conflict *models.BookingConflictError
		if errors.As(err, &conflict) {
			s.Metrics.ObserveConflict(draft.Source)
			s.Logger.Warn("slot taken between check and insert",
				zap.String("storeID", storeID),
				zap.String("date", date),
				zap.String("time", time))
		}
		return nil, err
	}
	return appt, nil
}
