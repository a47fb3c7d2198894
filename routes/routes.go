package routes

import (
	"net/http"
	"time"

	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/services/admission"
	"slotbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the assembled handlers for route registration.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Provider *handlers.ProviderHandler
	Schedule *handlers.ScheduleHandler
	Gate     admission.Gate
}

// RegisterPublicRoutes registers the unauthenticated booking surface.
// Both endpoints sit behind the admission gate.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	public := r.Group("/api/public")
	public.Use(middleware.AdmissionGateMiddleware(hb.Gate))
	{
		public.GET("/providers/:providerID/slots", hb.Booking.GetAvailableSlotsHandler)
		public.POST("/bookings", hb.Booking.SubmitBookingHandler)
	}
}

// RegisterProviderRoutes registers the provider management endpoints
// that feed the engine its data.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("", hb.Provider.CreateProviderHandler)
		api.GET("/:providerID", hb.Provider.GetProviderHandler)
		api.POST("/:providerID/services", hb.Provider.CreateServiceHandler)
		api.GET("/:providerID/services", hb.Provider.ListServicesHandler)
		api.PUT("/:providerID/availability", hb.Schedule.SetAvailabilityHandler)
		api.GET("/:providerID/availability", hb.Schedule.GetAvailabilityHandler)
		api.GET("/:providerID/appointments", hb.Schedule.ListAppointmentsHandler)
	}
	r.PATCH("/api/appointments/:appointmentID/status", hb.Schedule.UpdateAppointmentStatusHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// The booking surface is consumed cross-origin by third-party sites.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
