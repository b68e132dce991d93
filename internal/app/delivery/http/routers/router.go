package routers

import (
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/appointments"
	"doctorsportal-service/internal/app/services/auth"
	"doctorsportal-service/internal/app/services/bookings"
	"doctorsportal-service/internal/app/services/doctors"
	"doctorsportal-service/internal/app/services/payments"
	"doctorsportal-service/internal/app/services/users"
	"doctorsportal-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// SetupRoutes mounts every endpoint at the root; there is no version or
// service prefix. Guards are attached per route so the protection level of
// each endpoint is readable from this package alone.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	bookingController *bookings.BookingController,
	userController *users.UserController,
	doctorController *doctors.DoctorController,
	paymentController *payments.PaymentController,
	authController *auth.AuthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
		w.WriteHeader(constvars.StatusOK)
		w.Write([]byte(constvars.LivenessMessage))
	})

	attachAppointmentRoutes(router, mw, appointmentController)
	attachBookingRoutes(router, mw, bookingController)
	attachUserRoutes(router, mw, userController)
	attachDoctorRoutes(router, mw, doctorController)
	attachPaymentRoutes(router, mw, paymentController)
	attachAuthRoutes(router, mw, authController)
}
