package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/appointment"
	"agendly/services/availability"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the store owner's appointment book.
type AppointmentHandler struct {
	Lifecycle    appointment.Lifecycle
	Availability availability.AvailabilityService
}

func NewAppointmentHandler(lifecycle appointment.Lifecycle, availabilitySvc availability.AvailabilityService) *AppointmentHandler {
	return &AppointmentHandler{Lifecycle: lifecycle, Availability: availabilitySvc}
}

// ListAppointmentsHandler serves ?date= for one day or ?from=&to= for a half-open range.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	var (
		appointments []models.Appointment
		err          error
	)
	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		appointments, err = h.Lifecycle.ListRange(c.Request.Context(), storeID, from, to)
	} else {
		appointments, err = h.Lifecycle.ListByDate(c.Request.Context(), storeID, dateQuery(c))
	}
	if err != nil {
		respondError(c, "list appointments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var input models.AppointmentInput
	if !bindJSON(c, &input) {
		return
	}
	input.Source = models.SourceOwner

	appt, err := h.Availability.BookSlot(c.Request.Context(), storeID, input.Date, input.Time, input)
	if err != nil {
		respondError(c, "create appointment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment created", "appointment": appt})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	appt, err := h.Lifecycle.Get(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		respondError(c, "load appointment", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var req models.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	appt, err := h.Lifecycle.Transition(c.Request.Context(), storeID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, "update appointment status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "appointment": appt})
}
