package routers

import (
	"fmt"
	"time"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/services/admin"
	"medibill-service/internal/app/services/auth"
	"medibill-service/internal/app/services/billing"
	"medibill-service/internal/app/services/brokers"
	"medibill-service/internal/app/services/doctors"
	"medibill-service/internal/app/services/labtests"
	"medibill-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	billingController *billing.BillingController,
	doctorController *doctors.DoctorController,
	brokerController *brokers.BrokerController,
	patientController *patients.PatientController,
	testController *labtests.TestController,
	adminController *admin.AdminController,
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

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/billing", func(r chi.Router) {
			attachBillingRoutes(r, middlewares, billingController)
		})

		r.Route("/manager", func(r chi.Router) {
			attachManagerRoutes(r, middlewares, doctorController, brokerController, patientController, testController)
		})

		attachProfileRoutes(r, middlewares, billingController)

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, adminController)
		})
	})
}
