package routers

import (
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.RequireActiveSession)

	router.Get("/", appointmentController.ListAppointments)
	router.Post("/", appointmentController.CreateAppointment)
	router.Put("/{"+constvars.URLParamID+"}", appointmentController.UpdateAppointment)
	router.Delete("/{"+constvars.URLParamID+"}", appointmentController.DeleteAppointment)
}
