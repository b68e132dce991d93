package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, _ *middlewares.Middlewares, authController *auth.AuthController) {
	router.Get("/jwt", authController.IssueToken)
}
