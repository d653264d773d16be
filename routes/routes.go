package routes

import (
	"time"

	"agendly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPublicRoutes registers the customer-facing booking page endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/api/public/stores/:storeID")
	{
		if hb.PublicRate != nil {
			public.Use(hb.PublicRate)
		}
		public.GET("/availability", hb.Availability.PublicAvailabilityHandler)
		public.GET("/services", hb.Catalog.PublicServicesHandler)
		public.POST("/bookings", hb.Availability.PublicBookingHandler)
	}
}

// RegisterStoreRoutes registers the store owner's console endpoints.
func RegisterStoreRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	store := r.Group("/api/store")
	{
		store.Use(hb.StoreAuth)

		schedule := store.Group("/schedule")
		schedule.GET("", hb.Schedule.GetScheduleHandler)
		schedule.POST("", hb.Schedule.SetWeekHandler)
		schedule.POST("/defaults", hb.Schedule.InitDefaultsHandler)
		schedule.POST("/bulk", hb.Schedule.ApplyBulkRangeHandler)
		schedule.POST("/:weekday/slots", hb.Schedule.AddSlotHandler)
		schedule.PUT("/:weekday/slots/:time", hb.Schedule.ReplaceSlotHandler)
		schedule.DELETE("/:weekday/slots/:time", hb.Schedule.RemoveSlotHandler)

		store.GET("/availability", hb.Availability.GetAvailabilityHandler)

		store.GET("/appointments", hb.Appointments.ListAppointmentsHandler)
		store.POST("/appointments", hb.Appointments.CreateAppointmentHandler)
		store.GET("/appointments/:id", hb.Appointments.GetAppointmentHandler)
		store.PATCH("/appointments/:id/status", hb.Appointments.UpdateStatusHandler)

		store.GET("/services", hb.Catalog.ListServicesHandler)
		store.POST("/services", hb.Catalog.CreateServiceHandler)
		store.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		store.PATCH("/services/:id/active", hb.Catalog.SetActiveHandler)

		store.GET("/dashboard", hb.Dashboard.GetDashboardHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(hb.AdminAuth)
		adminGroup.DELETE("/stores/:storeID/appointments/:id", hb.Admin.DeleteAppointmentHandler)
		adminGroup.DELETE("/stores/:storeID/schedule", hb.Admin.DeleteScheduleHandler)
		adminGroup.DELETE("/stores/:storeID", hb.Admin.DeleteStoreHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterStoreRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterOpsRoutes(r)
}
