package routers

import (
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/admin"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admin.AdminController) {
	// Open bootstrap route: creates the first administrator account on a
	// fresh deployment.
	router.Post("/register", adminController.RegisterAdmin)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRoles(models.UserTypeAdmin))

		r.Post("/managers", adminController.CreateManager)
		r.Get("/managers", adminController.GetAllManagers)
		r.Get("/dashboard", adminController.GetDashboard)
		r.Get("/hospital", adminController.GetHospitalSettings)
		r.Put("/hospital", adminController.UpdateHospitalSettings)
	})
}
