package routers

import (
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Use(middlewares.RequireActiveSession)

	router.Get("/", medicalRecordController.ListMedicalRecords)
	router.Post("/", medicalRecordController.CreateMedicalRecord)
	router.Put("/{"+constvars.URLParamID+"}", medicalRecordController.UpdateMedicalRecord)
	router.Delete("/{"+constvars.URLParamID+"}", medicalRecordController.DeleteMedicalRecord)
}
