package handler

import (
	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/healthz", h.Liveness)
	app.Get("/readyz", h.Readiness)
}

func (h *HealthHandler) Liveness(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"status": "up"})
}

// Readiness fails when the database is unreachable; cache being down does
// not flip readiness since the service degrades gracefully without it.
func (h *HealthHandler) Readiness(c fiber.Ctx) error {
	if h.db == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database not configured", nil)
	}
	if err := h.db.Ping(c.Context()); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"status": "ready"})
}
