package app

import (
	"context"
	"log"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/config"
	"github.com/Harshverma1208/skill-companion-project/internal/database"
	dbpostgres "github.com/Harshverma1208/skill-companion-project/internal/database/postgres"
	"github.com/Harshverma1208/skill-companion-project/internal/infrastructure/cache"
	"github.com/Harshverma1208/skill-companion-project/internal/ws"
)

// Container holds the shared process-wide dependencies. The cache is always
// non-nil; when Redis is unreachable it degrades to a bypass.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
