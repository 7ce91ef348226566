package routers

import (
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/billing"

	"github.com/go-chi/chi/v5"
)

// Profile routes expose a doctor or broker together with the bills
// credited to them, and the hospital together with its latest bills.
func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, billingController *billing.BillingController) {
	authed := router.With(middlewares.Authenticate, middlewares.RequireRoles(models.UserTypeAdmin, models.UserTypeManager))

	authed.Get("/doctor/{doctorID}", billingController.GetDoctorProfile)
	authed.Get("/broker/{brokerID}", billingController.GetBrokerProfile)
	authed.Get("/hospital", billingController.GetHospitalProfile)
}
