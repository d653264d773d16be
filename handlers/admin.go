// File: handlers/admin.go
package handlers

import (
	"net/http"

	"agendly/services/appointment"
	"agendly/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Lifecycle appointment.Lifecycle
	Schedule  schedule.ScheduleService
	Logger    *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(lifecycle appointment.Lifecycle, scheduleSvc schedule.ScheduleService, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{Lifecycle: lifecycle, Schedule: scheduleSvc, Logger: logger}
}

// DeleteAppointmentHandler hard-deletes an appointment.
func (ah *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	storeID, id := c.Param("storeID"), c.Param("id")
	if err := ah.Lifecycle.Delete(c.Request.Context(), storeID, id); err != nil {
		respondError(c, "delete appointment", err)
		return
	}
	ah.Logger.Info("Admin deleted appointment", zap.String("storeID", storeID), zap.String("appointmentID", id))
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// DeleteScheduleHandler removes only a store's schedule.
func (ah *AdminHandler) DeleteScheduleHandler(c *gin.Context) {
	storeID := c.Param("storeID")
	if err := ah.Schedule.DeleteSchedule(c.Request.Context(), storeID); err != nil {
		respondError(c, "delete schedule", err)
		return
	}
	ah.Logger.Info("Admin deleted schedule", zap.String("storeID", storeID))
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// DeleteStoreHandler runs the store deletion cascade: appointments (and their cached
// dashboard), then the schedule.
func (ah *AdminHandler) DeleteStoreHandler(c *gin.Context) {
	storeID := c.Param("storeID")
	removed, err := ah.Lifecycle.DeleteStore(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, "delete store appointments", err)
		return
	}
	if err := ah.Schedule.DeleteSchedule(c.Request.Context(), storeID); err != nil {
		respondError(c, "delete schedule", err)
		return
	}
	ah.Logger.Info("Admin deleted store data",
		zap.String("storeID", storeID),
		zap.Int64("appointments", removed))
	c.JSON(http.StatusOK, gin.H{"message": "Store data deleted", "appointmentsDeleted": removed})
}
