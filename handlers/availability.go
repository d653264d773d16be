package handlers

import (
	"net/http"
	"strconv"
	"time"

	"agendly/config"
	"agendly/models"
	"agendly/services/availability"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves reconciled slot lists and slot bookings.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

var timeNow = time.Now

// dateQuery defaults to today in the store timezone.
func dateQuery(c *gin.Context) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return utils.FormatDate(timeNow().In(config.Location()))
}

// GetAvailabilityHandler serves GET /api/store/availability?date=&days=.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	h.respondAvailability(c, storeID, false)
}

// PublicAvailabilityHandler serves GET /api/public/stores/:storeID/availability.
func (h *AvailabilityHandler) PublicAvailabilityHandler(c *gin.Context) {
	h.respondAvailability(c, c.Param("storeID"), true)
}

// respondAvailability serves one day or, with ?days=, a range. Public callers only learn which
// slots are taken.
func (h *AvailabilityHandler) respondAvailability(c *gin.Context, storeID string, public bool) {
	date := dateQuery(c)

	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days", "message": "days must be a number"})
			return
		}
		result, err := h.Service.GetRangeAvailability(c.Request.Context(), storeID, date, days)
		if err != nil {
			respondError(c, "load availability", err)
			return
		}
		if public {
			for i := range result {
				result[i] = publicDay(result[i])
			}
		}
		c.JSON(http.StatusOK, gin.H{"days": result})
		return
	}

	day, err := h.Service.GetAvailability(c.Request.Context(), storeID, date)
	if err != nil {
		respondError(c, "load availability", err)
		return
	}
	if public {
		stripped := publicDay(*day)
		day = &stripped
	}
	c.JSON(http.StatusOK, day)
}

// publicDay copies a day without the appointments behind booked slots.
func publicDay(day models.DayAvailability) models.DayAvailability {
	slots := make([]models.SlotStatus, len(day.Slots))
	for i, s := range day.Slots {
		slots[i] = models.SlotStatus{Time: s.Time, Booked: s.Booked}
	}
	day.Slots = slots
	return day
}

// PublicBookingHandler serves POST /api/public/stores/:storeID/bookings.
func (h *AvailabilityHandler) PublicBookingHandler(c *gin.Context) {
	var input models.AppointmentInput
	if !bindJSON(c, &input) {
		return
	}
	input.Source = models.SourcePublic

	appt, err := h.Service.BookSlot(c.Request.Context(), c.Param("storeID"), input.Date, input.Time, input)
	if err != nil {
		respondError(c, "book slot", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking received",
		"appointment": publicView(appt),
	})
}

// publicView drops owner-only fields from a booking confirmation.
func publicView(appt *models.Appointment) gin.H {
	return gin.H{
		"id":          appt.ID,
		"serviceName": appt.ServiceName,
		"date":        appt.Date,
		"time":        appt.Time,
		"status":      appt.Status,
	}
}
