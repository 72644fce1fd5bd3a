package routers

import (
	"agenda-service/internal/app/services/core/health"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, healthController *health.HealthController) {
	router.Get("/", healthController.Check)
}
