package main

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/delivery/http/routers"
	"medicore-service/internal/app/drivers/database"
	"medicore-service/internal/app/drivers/logger"
	"medicore-service/internal/app/services/core/appointments"
	"medicore-service/internal/app/services/core/auth"
	"medicore-service/internal/app/services/core/dashboard"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/medicalrecords"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/shared/kvstore"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()
	log.Info("Server started on " + internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}

	if err := bootstrap.Shutdown(); err != nil {
		log.Warn("Cleanup finished with error: " + err.Error())
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Key-value store
	kvStore := kvstore.NewRedisStore(bootstrap.Redis)

	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Patient
	patientRepository := patients.NewPatientKvRepository(kvStore)
	patientUsecase := patients.NewPatientUsecase(patientRepository)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, requestTimeout)

	// Doctor
	doctorRepository := doctors.NewDoctorKvRepository(kvStore)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, requestTimeout)

	// Appointment
	appointmentRepository := appointments.NewAppointmentKvRepository(kvStore)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, doctorRepository)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	// Medical record
	medicalRecordRepository := medicalrecords.NewMedicalRecordKvRepository(kvStore)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(medicalRecordRepository, patientRepository, doctorRepository)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.Logger, medicalRecordUsecase, requestTimeout)

	// Auth
	userRepository := auth.NewUserKvRepository(kvStore)
	sessionRepository := auth.NewSessionKvRepository(kvStore)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionRepository)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, requestTimeout)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(patientRepository, doctorRepository, appointmentRepository, medicalRecordRepository)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase, requestTimeout)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		patientController,
		doctorController,
		appointmentController,
		medicalRecordController,
		dashboardController,
	)
}
