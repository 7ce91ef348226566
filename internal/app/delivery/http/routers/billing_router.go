package routers

import (
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/billing"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, middlewares *middlewares.Middlewares, billingController *billing.BillingController) {
	router.Use(middlewares.Authenticate)

	// Only managers issue and correct bills; admins get read access.
	managerOnly := middlewares.RequireRoles(models.UserTypeManager)
	readRoles := middlewares.RequireRoles(models.UserTypeAdmin, models.UserTypeManager)

	router.With(managerOnly).Post("/", billingController.GenerateBill)
	router.With(managerOnly).Put("/{billID}", billingController.UpdateBill)

	router.With(readRoles).Get("/", billingController.GetAllBills)
	router.With(readRoles).Get("/search", billingController.SearchBills)
	router.With(readRoles).Get("/{billID}", billingController.GetBillByID)
}
