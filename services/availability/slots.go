// File: services/availability/slots.go
package availability

import (
	"agendly/config"
	"agendly/models"
	"agendly/utils"
)

// SlotPolicy decides which appointments occupy which configured slots.
type SlotPolicy struct {
	// CancelledBlocks keeps cancelled appointments in the occupancy lookup.
	CancelledBlocks bool
	// DurationAware marks every slot inside [time, time+serviceDuration) of an appointment,
	// instead of only the slot whose time matches exactly.
	DurationAware bool
}

// DefaultSlotPolicy treats slots as discrete points and lets cancelled appointments keep them.
func DefaultSlotPolicy() SlotPolicy {
	return SlotPolicy{CancelledBlocks: true}
}

// PolicyFromConfig reads CANCELLED_SLOTS_BLOCK and DURATION_AWARE_SLOTS.
func PolicyFromConfig() SlotPolicy {
	return SlotPolicy{
		CancelledBlocks: config.AppConfig.CancelledSlotsBlock,
		DurationAware:   config.AppConfig.DurationAwareSlots,
	}
}

// ComputeSlots reconciles a weekday's configured slots with the appointments of one date.
// The result has exactly one entry per configured slot, in configured order. When several
// appointments claim a slot the last one in input order is reported.
func ComputeSlots(weekdaySlots []string, appointments []models.Appointment, policy SlotPolicy) []models.SlotStatus {
	out := make([]models.SlotStatus, len(weekdaySlots))
	if len(weekdaySlots) == 0 {
		return out
	}

	occupying := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == models.StatusCancelled && !policy.CancelledBlocks {
			continue
		}
		occupying = append(occupying, a)
	}

	var lookup map[string]*models.Appointment
	if !policy.DurationAware {
		lookup = make(map[string]*models.Appointment, len(occupying))
		for i := range occupying {
			lookup[occupying[i].Time] = &occupying[i]
		}
	}

	for i, t := range weekdaySlots {
		var holder *models.Appointment
		if policy.DurationAware {
			holder = coveringAppointment(t, occupying)
		} else {
			holder = lookup[t]
		}

		out[i] = models.SlotStatus{Time: t, Booked: holder != nil}
		if holder != nil {
			appt := *holder
			out[i].Appointment = &appt
		}
	}
	return out
}

// coveringAppointment returns the last appointment whose half-open interval
// [time, time+duration) contains slot. Unparseable times fall back to exact matching.
func coveringAppointment(slot string, appointments []models.Appointment) *models.Appointment {
	point, slotErr := utils.ParseClock(slot)

	var holder *models.Appointment
	for i := range appointments {
		a := &appointments[i]
		start, err := utils.ParseClock(a.Time)
		if slotErr != nil || err != nil {
			if a.Time == slot {
				holder = a
			}
			continue
		}
		duration := a.ServiceDuration
		if duration < 1 {
			duration = 1
		}
		if start <= point && point < start+duration {
			holder = a
		}
	}
	return holder
}
