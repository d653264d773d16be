package appointment

import (
	"testing"

	"agendly/models"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []models.AppointmentStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusCompleted,
	models.StatusCancelled,
}

func TestTerminalStatusesRejectEverything(t *testing.T) {
	for _, from := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		assert.True(t, IsTerminal(from))
		for _, to := range allStatuses {
			err := ValidateTransition(from, to)
			var invalid *models.InvalidTransitionError
			assert.ErrorAs(t, err, &invalid, "%s -> %s", from, to)
		}
	}
}

func TestPendingReachesOnlyConfirmedAndCancelled(t *testing.T) {
	want := map[models.AppointmentStatus]bool{
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	}
	for _, to := range allStatuses {
		assert.Equal(t, want[to], CanTransition(models.StatusPending, to), "pending -> %s", to)
	}
}

func TestConfirmedTransitions(t *testing.T) {
	assert.True(t, CanTransition(models.StatusConfirmed, models.StatusCompleted))
	assert.True(t, CanTransition(models.StatusConfirmed, models.StatusCancelled))
	assert.True(t, CanTransition(models.StatusConfirmed, models.StatusPending))
	assert.False(t, CanTransition(models.StatusConfirmed, models.StatusConfirmed))
}

func TestValidateTransitionUnknownTarget(t *testing.T) {
	var validationErr *models.ValidationError
	assert.ErrorAs(t, ValidateTransition(models.StatusPending, "archived"), &validationErr)
}
