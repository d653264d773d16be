package reporting

import (
	"time"

	"agendly/models"
	"agendly/utils"
)

// WeekWindow returns the Sunday-based week containing day as [start, start+7d).
func WeekWindow(day time.Time) (time.Time, time.Time) {
	start := midnight(day).AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns [first of month, first of next month) around day.
func MonthWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, 0)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Dashboard computes the store aggregates as seen at reference in loc.
func Dashboard(storeID string, appointments []models.Appointment, reference time.Time, loc *time.Location) models.DashboardStats {
	if loc == nil {
		loc = time.UTC
	}
	local := reference.In(loc)
	weekStart, weekEnd := WeekWindow(local)
	monthStart, monthEnd := MonthWindow(local)
	today := utils.FormatDate(local)

	return models.DashboardStats{
		StoreID:           storeID,
		ReferenceDate:     today,
		TodayCount:        DailyCount(appointments, today),
		WeekRevenue:       Revenue(appointments, weekStart, weekEnd),
		MonthRevenue:      Revenue(appointments, monthStart, monthEnd),
		CompletionRate:    CompletionRate(appointments),
		UniqueCustomers:   UniqueCustomerCount(appointments),
		TotalAppointments: len(appointments),
		ByStatus:          CountByStatus(appointments),
		ComputedAt:        reference.UTC(),
	}
}
