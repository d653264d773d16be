package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler and the auth middleware the routes need.
type HandlerBundle struct {
	// Middleware
	StoreAuth  gin.HandlerFunc
	AdminAuth  gin.HandlerFunc
	PublicRate gin.HandlerFunc

	Schedule     *ScheduleHandler
	Availability *AvailabilityHandler
	Appointments *AppointmentHandler
	Catalog      *CatalogHandler
	Dashboard    *DashboardHandler
	Admin        *AdminHandler
}
