package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/delivery/http/routers"
	"medibill-service/internal/app/drivers/database"
	"medibill-service/internal/app/drivers/logger"
	mq "medibill-service/internal/app/drivers/messaging"
	objectstorage "medibill-service/internal/app/drivers/storage"
	"medibill-service/internal/app/services/admin"
	"medibill-service/internal/app/services/auth"
	"medibill-service/internal/app/services/billing"
	"medibill-service/internal/app/services/brokers"
	"medibill-service/internal/app/services/doctors"
	"medibill-service/internal/app/services/hospitals"
	"medibill-service/internal/app/services/labtests"
	"medibill-service/internal/app/services/patients"
	sharedmessaging "medibill-service/internal/app/services/shared/messaging"
	sharedredis "medibill-service/internal/app/services/shared/redis"
	sharedstorage "medibill-service/internal/app/services/shared/storage"
	"medibill-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := mq.NewRabbitMQ(driverConfig)
	minioClient := objectstorage.NewMinio(driverConfig)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		log.Fatal("error ensuring mongo indexes", zap.Error(err))
	}
	indexCancel()

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests already received by the server to be processed")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	sessionRepository := sharedredis.NewSessionRepository(bootstrap.Redis)
	eventPublisher, err := sharedmessaging.NewBillingEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("error creating billing event publisher", zap.Error(err))
	}
	receiptArchive := sharedstorage.NewMinioReceiptArchive(bootstrap.Minio, bootstrap.DriverConfig.Minio.ReceiptBucket)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	hospitalMongoRepository := hospitals.NewHospitalMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	brokerMongoRepository := brokers.NewBrokerMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	testMongoRepository := labtests.NewTestMongoRepository(bootstrap.MongoDB, dbName)
	billMongoRepository := billing.NewBillMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Entity services
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	brokerUsecase := brokers.NewBrokerUsecase(brokerMongoRepository, bootstrap.Logger)
	brokerController := brokers.NewBrokerController(brokerUsecase, bootstrap.Logger)

	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	testUsecase := labtests.NewTestUsecase(testMongoRepository, bootstrap.Logger)
	testController := labtests.NewTestController(testUsecase, bootstrap.Logger)

	// Billing
	billingUsecase := billing.NewBillingUsecase(
		billMongoRepository,
		hospitalMongoRepository,
		doctorMongoRepository,
		brokerMongoRepository,
		patientMongoRepository,
		testMongoRepository,
		eventPublisher,
		receiptArchive,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	billingController := billing.NewBillingController(billingUsecase, bootstrap.Logger)

	// Admin
	adminUsecase := admin.NewAdminUsecase(
		userMongoRepository,
		hospitalMongoRepository,
		billMongoRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	adminController := admin.NewAdminController(adminUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		billingController,
		doctorController,
		brokerController,
		patientController,
		testController,
		adminController,
	)
}
