package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"resume-screen/internal/database"
	"resume-screen/internal/pkg/response"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache cachePinger
}

func NewHealthHandler(db database.DB, cache cachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health reports liveness plus per-dependency status. The cache is
// optional, so a missing cache degrades the report without failing it.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"database": "ok",
		"cache":    "ok",
	}
	status := fiber.StatusOK

	if h.db == nil {
		data["database"] = "not configured"
		status = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(c.Context()); err != nil {
		data["database"] = "unreachable"
		status = fiber.StatusServiceUnavailable
	}

	if h.cache == nil {
		data["cache"] = "not configured"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		data["cache"] = "unreachable"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
