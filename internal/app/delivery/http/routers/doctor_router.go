package routers

import (
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.RequireActiveSession)

	router.Get("/", doctorController.ListDoctors)
	router.Post("/", doctorController.CreateDoctor)
	router.Put("/{"+constvars.URLParamID+"}", doctorController.UpdateDoctor)
	router.Delete("/{"+constvars.URLParamID+"}", doctorController.DeleteDoctor)
}
