package routes

import (
	"experio/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up routes for booking creation and lookup
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, rateLimit gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/", rateLimit, bookingHandler.CreateBooking)
		bookings.POST("/quote", bookingHandler.QuotePrice)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.GET("/", bookingHandler.GetBookingsByEmail)
	}
}
