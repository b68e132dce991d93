package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, mw *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(mw.Authenticate).Get("/bookings", bookingController.GetBookings)
	router.Post("/bookings", bookingController.CreateBooking)
	// Lookup by id carries no ownership check; any valid id reads any
	// booking. The payment page fetches through here before checkout.
	router.Get("/booking/{id}", bookingController.GetBookingByID)
}
