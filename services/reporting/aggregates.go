// File: services/reporting/aggregates.go
package reporting

import (
	"math"
	"time"

	"agendly/models"
	"agendly/utils"
)

// DailyCount counts appointments of any status dated today ("YYYY-MM-DD").
func DailyCount(appointments []models.Appointment, today string) int {
	n := 0
	for _, a := range appointments {
		if a.Date == today {
			n++
		}
	}
	return n
}

// Revenue sums the denormalized price of completed appointments dated in
// [windowStart, windowEnd). Only the calendar dates of the bounds are used.
func Revenue(appointments []models.Appointment, windowStart, windowEnd time.Time) float64 {
	from, to := utils.FormatDate(windowStart), utils.FormatDate(windowEnd)

	var cents int64
	for _, a := range appointments {
		if a.Status != models.StatusCompleted {
			continue
		}
		if a.Date < from || a.Date >= to {
			continue
		}
		cents += int64(math.Round(a.ServicePrice * 100))
	}
	return float64(cents) / 100
}

// CompletionRate is the percentage of appointments that are completed; an empty set counts
// as 100.
func CompletionRate(appointments []models.Appointment) float64 {
	if len(appointments) == 0 {
		return 100
	}
	completed := 0
	for _, a := range appointments {
		if a.Status == models.StatusCompleted {
			completed++
		}
	}
	return float64(completed) * 100 / float64(len(appointments))
}

// UniqueCustomerCount counts distinct customer names. Two customers sharing a name count once.
func UniqueCustomerCount(appointments []models.Appointment) int {
	seen := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		if a.CustomerName == "" {
			continue
		}
		seen[a.CustomerName] = struct{}{}
	}
	return len(seen)
}

// CountByStatus tallies appointments per status; every known status is present.
func CountByStatus(appointments []models.Appointment) map[models.AppointmentStatus]int {
	out := map[models.AppointmentStatus]int{
		models.StatusPending:   0,
		models.StatusConfirmed: 0,
		models.StatusCompleted: 0,
		models.StatusCancelled: 0,
	}
	for _, a := range appointments {
		out[a.Status]++
	}
	return out
}
