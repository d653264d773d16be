// File: services/schedule/week.go
package schedule

import (
	"sort"

	"agendly/models"
	"agendly/utils"
)

// Slot generation for onboarding defaults.
const (
	defaultOpen     = "08:00"
	defaultStep     = 30
	weekdayClose    = "19:00"
	saturdayClose   = "13:00"
	saturdayIndex   = 6
	firstWorkingDay = 1
	lastWorkingDay  = 5
)

// GenerateRange returns start, start+step, ... strictly before end.
func GenerateRange(start, end string, stepMinutes int) ([]string, error) {
	from, err := utils.ParseClock(start)
	if err != nil {
		return nil, models.NewValidationError("start", "%v", err)
	}
	to, err := utils.ParseClock(end)
	if err != nil {
		return nil, models.NewValidationError("end", "%v", err)
	}
	if stepMinutes <= 0 || from >= to {
		return nil, &models.InvalidRangeError{Start: start, End: end, StepMinutes: stepMinutes}
	}

	slots := make([]string, 0, (to-from+stepMinutes-1)/stepMinutes)
	for m := from; m < to; m += stepMinutes {
		slots = append(slots, utils.FormatClock(m))
	}
	return slots, nil
}

// DefaultWeek is the schedule a store starts with: Mon-Fri 08:00-18:30 and Sat 08:00-12:30
// in 30 minute steps, Sunday closed.
func DefaultWeek() [models.DaysPerWeek][]string {
	var week [models.DaysPerWeek][]string
	weekdays, _ := GenerateRange(defaultOpen, weekdayClose, defaultStep)
	saturday, _ := GenerateRange(defaultOpen, saturdayClose, defaultStep)

	for d := firstWorkingDay; d <= lastWorkingDay; d++ {
		week[d] = append([]string(nil), weekdays...)
	}
	week[saturdayIndex] = saturday
	week[0] = []string{}
	return week
}

// Zero-padded HH:MM values order correctly as strings.
func sortSlots(slots []string) {
	sort.Strings(slots)
}

func indexOf(slots []string, t string) int {
	for i, s := range slots {
		if s == t {
			return i
		}
	}
	return -1
}

// addSlot returns a sorted copy of slots with t inserted.
func addSlot(slots []string, weekday int, t string) ([]string, error) {
	if indexOf(slots, t) >= 0 {
		return nil, &models.DuplicateSlotError{Weekday: weekday, Time: t}
	}
	out := append(append([]string(nil), slots...), t)
	sortSlots(out)
	return out, nil
}

// removeSlot returns slots without t and whether anything changed.
func removeSlot(slots []string, t string) ([]string, bool) {
	i := indexOf(slots, t)
	if i < 0 {
		return slots, false
	}
	out := make([]string, 0, len(slots)-1)
	out = append(out, slots[:i]...)
	out = append(out, slots[i+1:]...)
	return out, true
}

// replaceSlot swaps oldTime for newTime. A missing oldTime degrades to inserting newTime.
func replaceSlot(slots []string, weekday int, oldTime, newTime string) ([]string, error) {
	if oldTime == newTime {
		if indexOf(slots, newTime) >= 0 {
			return slots, nil
		}
		return addSlot(slots, weekday, newTime)
	}
	if indexOf(slots, newTime) >= 0 {
		return nil, &models.DuplicateSlotError{Weekday: weekday, Time: newTime}
	}
	remaining, _ := removeSlot(slots, oldTime)
	return addSlot(remaining, weekday, newTime)
}

func validateWeekday(weekday int) error {
	if weekday < 0 || weekday >= models.DaysPerWeek {
		return models.NewValidationError("weekday", "must be between 0 (Sunday) and 6 (Saturday), got %d", weekday)
	}
	return nil
}

func validateClock(field, t string) error {
	if !utils.IsClock(t) {
		return models.NewValidationError(field, "invalid time %q: expected HH:MM", t)
	}
	return nil
}
