package routes

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	prediction *handler.PredictionHandler
	career     *handler.CareerHandler
}

func NewRegistry(health *handler.HealthHandler, prediction *handler.PredictionHandler, career *handler.CareerHandler) *Registry {
	return &Registry{health: health, prediction: prediction, career: career}
}

// Register mounts /health at the root and the API under /api/v1.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	r.registerV1(app.Group("/api/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	if r.prediction != nil {
		r.prediction.RegisterRoutes(v1)
	}
	if r.career != nil {
		r.career.RegisterRoutes(v1)
	}
}
