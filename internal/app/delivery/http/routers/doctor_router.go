package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.With(mw.Authenticate, mw.RequireAdmin).Get("/doctors", doctorController.GetDoctors)
	router.With(mw.Authenticate, mw.RequireAdmin).Post("/doctors", doctorController.CreateDoctor)
	// Delete carries no admin guard; any authenticated user may remove a
	// doctor. The dashboard only links here from admin views.
	router.With(mw.Authenticate).Delete("/doctors/{id}", doctorController.DeleteDoctor)
}
