package routers

import (
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/user", authController.GetCurrentUser)
}
