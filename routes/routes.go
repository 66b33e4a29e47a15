package routes

import (
	"quicklegal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Advocate *handlers.AdvocateHandler
	User     *handlers.UserHandler
}

// RegisterRoutes registers all API endpoints on the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.Default())

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", hb.Booking.ListBookings)
		bookings.PUT("/:id/cancel", hb.Booking.CancelBooking)
		bookings.POST("/:id/confirm", hb.Booking.ConfirmBooking)
	}

	advocates := r.Group("/api/advocates")
	{
		advocates.POST("", hb.Advocate.RegisterAdvocate)
		advocates.GET("", hb.Advocate.SearchAdvocates)
		advocates.GET("/:id", hb.Advocate.GetAdvocate)
		advocates.GET("/:id/availability", hb.Advocate.GetAvailability)
	}

	users := r.Group("/api/users")
	{
		users.POST("", hb.User.RegisterUser)
		users.POST("/:id/logins", hb.User.RecordLogin)
	}
}
