package routers

import (
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/brokers"
	"medibill-service/internal/app/services/doctors"
	"medibill-service/internal/app/services/labtests"
	"medibill-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachManagerRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	brokerController *brokers.BrokerController,
	patientController *patients.PatientController,
	testController *labtests.TestController,
) {
	router.Use(middlewares.Authenticate)

	managerOnly := middlewares.RequireRoles(models.UserTypeManager)
	readRoles := middlewares.RequireRoles(models.UserTypeAdmin, models.UserTypeManager)

	router.With(managerOnly).Post("/doctors", doctorController.CreateDoctor)
	router.With(readRoles).Get("/doctors", doctorController.GetAllDoctors)

	router.With(managerOnly).Post("/brokers", brokerController.CreateBroker)
	router.With(readRoles).Get("/brokers", brokerController.GetAllBrokers)

	router.With(managerOnly).Post("/patients", patientController.RegisterPatient)
	router.With(readRoles).Get("/patients", patientController.GetAllPatients)

	router.With(managerOnly).Post("/tests", testController.CreateTest)
	router.With(readRoles).Get("/tests", testController.GetAllTests)
}
