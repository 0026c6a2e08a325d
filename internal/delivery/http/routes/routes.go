package routes

import (
	"log"

	"github.com/Harshverma1208/skill-companion-project/internal/config"
	"github.com/Harshverma1208/skill-companion-project/internal/database"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/handler"
	v1 "github.com/Harshverma1208/skill-companion-project/internal/delivery/http/routes/v1"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"
	"github.com/Harshverma1208/skill-companion-project/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  usecase.SearchCache
	hub    *ws.Hub
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.SearchCache, hub *ws.Hub, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  cache,
		hub:    hub,
		logger: logger,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config: r.cfg,
		DB:     r.db,
		Cache:  r.cache,
		Hub:    r.hub,
		Logger: r.logger,
	})
}
