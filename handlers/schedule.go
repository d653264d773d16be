package handlers

import (
	"net/http"
	"strconv"

	"agendly/models"
	"agendly/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the store owner's weekly schedule.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func weekdayParam(c *gin.Context) (int, bool) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday", "message": "weekday must be a number from 0 (Sunday) to 6 (Saturday)"})
		return 0, false
	}
	return weekday, true
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	week, err := h.Service.GetSchedule(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, "load schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": week})
}

func (h *ScheduleHandler) SetWeekHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var req models.SetWeekRequest
	if !bindJSON(c, &req) {
		return
	}
	week, err := h.Service.SetWeek(c.Request.Context(), storeID, req.Weekdays)
	if err != nil {
		respondError(c, "save schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "schedule": week})
}

func (h *ScheduleHandler) InitDefaultsHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	week, err := h.Service.InitDefaults(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, "create default schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": week})
}

func (h *ScheduleHandler) AddSlotHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	weekday, ok := weekdayParam(c)
	if !ok {
		return
	}
	var req models.AddSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	week, err := h.Service.AddSlot(c.Request.Context(), storeID, weekday, req.Time)
	if err != nil {
		respondError(c, "add slot", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Slot added", "slots": week.Weekdays[weekday]})
}

func (h *ScheduleHandler) ReplaceSlotHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	weekday, ok := weekdayParam(c)
	if !ok {
		return
	}
	var req models.ReplaceSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	week, err := h.Service.ReplaceSlot(c.Request.Context(), storeID, weekday, c.Param("time"), req.NewTime)
	if err != nil {
		respondError(c, "update slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot updated", "slots": week.Weekdays[weekday]})
}

func (h *ScheduleHandler) RemoveSlotHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	weekday, ok := weekdayParam(c)
	if !ok {
		return
	}
	week, err := h.Service.RemoveSlot(c.Request.Context(), storeID, weekday, c.Param("time"))
	if err != nil {
		respondError(c, "remove slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot removed", "slots": week.Weekdays[weekday]})
}

func (h *ScheduleHandler) ApplyBulkRangeHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	var req models.BulkRangeRequest
	if !bindJSON(c, &req) {
		return
	}
	week, err := h.Service.ApplyBulkRange(c.Request.Context(), storeID, req)
	if err != nil {
		respondError(c, "apply slot range", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slots generated", "schedule": week})
}
