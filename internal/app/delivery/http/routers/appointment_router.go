package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, _ *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Get("/appointmentOptions", appointmentController.GetAppointmentOptions)
	// Historical path name, kept for client compatibility. It lists
	// appointment option names, not doctor records.
	router.Get("/doctorsspacialty", appointmentController.GetSpecialties)
}
