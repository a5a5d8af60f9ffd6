package routes

import (
	"github.com/gofiber/fiber/v3"

	"resume-screen/internal/delivery/http/handler"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/ws"
)

type Registry struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Jobs      *handler.JobHandler
	Screening *handler.ScreeningHandler
	Results   *handler.ResultsHandler
	WS        *ws.Handler
	AuthMw    *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	if r.WS != nil {
		v1.Get("/ws", r.WS.HandleScreeningWS)
	}

	protected := v1.Group("", r.AuthMw.Middleware())

	jobs := protected.Group("/jobs")
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(jobs)
	}
	if r.Screening != nil {
		r.Screening.RegisterRoutes(jobs)
	}
	if r.Results != nil {
		r.Results.RegisterJobRoutes(jobs)
		r.Results.RegisterResumeRoutes(protected.Group("/resumes"))
	}
}
