package app

import (
	"fmt"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/config"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/middleware"
	"github.com/Harshverma1208/skill-companion-project/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
