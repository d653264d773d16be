package availability

import (
	"testing"

	"agendly/models"
	"agendly/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(id, t string, status models.AppointmentStatus, duration int) models.Appointment {
	return models.Appointment{ID: id, Date: "2025-01-06", Time: t, Status: status, ServiceDuration: duration}
}

func mondaySlots() []string {
	return schedule.DefaultWeek()[1]
}

func TestComputeSlotsNoAppointments(t *testing.T) {
	slots := mondaySlots()
	got := ComputeSlots(slots, nil, DefaultSlotPolicy())

	require.Len(t, got, len(slots))
	assert.Equal(t, "08:00", got[0].Time)
	assert.Equal(t, "18:30", got[len(got)-1].Time)
	for _, s := range got {
		assert.False(t, s.Booked, s.Time)
		assert.Nil(t, s.Appointment)
	}
}

func TestComputeSlotsMarksExactMatch(t *testing.T) {
	slots := mondaySlots()
	got := ComputeSlots(slots, []models.Appointment{appt("a1", "09:00", models.StatusConfirmed, 60)}, DefaultSlotPolicy())

	require.Len(t, got, len(slots))
	for _, s := range got {
		if s.Time == "09:00" {
			assert.True(t, s.Booked)
			require.NotNil(t, s.Appointment)
			assert.Equal(t, "a1", s.Appointment.ID)
			continue
		}
		assert.False(t, s.Booked, s.Time)
	}
}

func TestComputeSlotsEmptyInput(t *testing.T) {
	got := ComputeSlots(nil, []models.Appointment{appt("a1", "09:00", models.StatusPending, 30)}, DefaultSlotPolicy())
	assert.Empty(t, got)
}

func TestComputeSlotsLastWriteWins(t *testing.T) {
	got := ComputeSlots([]string{"09:00"}, []models.Appointment{
		appt("old", "09:00", models.StatusCancelled, 30),
		appt("new", "09:00", models.StatusPending, 30),
	}, DefaultSlotPolicy())

	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Appointment.ID)
}

func TestComputeSlotsIgnoresUnconfiguredTimes(t *testing.T) {
	got := ComputeSlots([]string{"09:00", "10:00"}, []models.Appointment{appt("a1", "09:15", models.StatusPending, 30)}, DefaultSlotPolicy())

	require.Len(t, got, 2)
	assert.False(t, got[0].Booked)
	assert.False(t, got[1].Booked)
}

func TestComputeSlotsCancelledPolicy(t *testing.T) {
	appointments := []models.Appointment{appt("a1", "09:00", models.StatusCancelled, 30)}

	blocking := ComputeSlots([]string{"09:00"}, appointments, SlotPolicy{CancelledBlocks: true})
	assert.True(t, blocking[0].Booked)

	freeing := ComputeSlots([]string{"09:00"}, appointments, SlotPolicy{CancelledBlocks: false})
	assert.False(t, freeing[0].Booked)
	assert.Nil(t, freeing[0].Appointment)
}

func TestComputeSlotsDurationAware(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}
	appointments := []models.Appointment{appt("a1", "09:00", models.StatusConfirmed, 60)}

	points := ComputeSlots(slots, appointments, SlotPolicy{CancelledBlocks: true})
	assert.Equal(t, []bool{true, false, false, false}, bookedFlags(points))

	intervals := ComputeSlots(slots, appointments, SlotPolicy{CancelledBlocks: true, DurationAware: true})
	assert.Equal(t, []bool{true, true, false, false}, bookedFlags(intervals))
	assert.Equal(t, "a1", intervals[1].Appointment.ID)
}

func TestComputeSlotsLengthInvariant(t *testing.T) {
	slots := []string{"08:00", "08:30", "09:00"}
	appointments := []models.Appointment{
		appt("a1", "08:00", models.StatusPending, 30),
		appt("a2", "08:00", models.StatusConfirmed, 30),
		appt("a3", "12:00", models.StatusCompleted, 30),
		appt("a4", "08:30", models.StatusCancelled, 90),
	}
	for _, policy := range []SlotPolicy{
		{},
		{CancelledBlocks: true},
		{DurationAware: true},
		{CancelledBlocks: true, DurationAware: true},
	} {
		got := ComputeSlots(slots, appointments, policy)
		require.Len(t, got, len(slots), "%+v", policy)
		for i := range slots {
			assert.Equal(t, slots[i], got[i].Time)
		}
	}
}

func TestComputeSlotsDoesNotAliasInput(t *testing.T) {
	appointments := []models.Appointment{appt("a1", "09:00", models.StatusPending, 30)}
	got := ComputeSlots([]string{"09:00"}, appointments, DefaultSlotPolicy())

	got[0].Appointment.CustomerName = "changed"
	assert.Empty(t, appointments[0].CustomerName)
}

func bookedFlags(slots []models.SlotStatus) []bool {
	out := make([]bool, len(slots))
	for i, s := range slots {
		out[i] = s.Booked
	}
	return out
}
