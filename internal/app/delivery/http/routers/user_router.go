package routers

import (
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, userController *users.UserController) {
	router.Post("/users", userController.RegisterUser)
	router.Get("/users", userController.GetUsers)
	router.Get("/users/admin/{email}", userController.CheckAdmin)
	router.With(mw.Authenticate, mw.RequireAdmin).Put("/users/admin/{id}", userController.PromoteToAdmin)
}
