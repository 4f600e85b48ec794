package routers

import (
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.RequireActiveSession)

	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Put("/{"+constvars.URLParamID+"}", patientController.UpdatePatient)
	router.Delete("/{"+constvars.URLParamID+"}", patientController.DeletePatient)
}
