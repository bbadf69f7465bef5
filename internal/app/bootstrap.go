package app

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/logger"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires the HTTP surface on top of an already built container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	var predictionCache usecase.PredictionCache
	var pinger handler.Pinger
	if c.Cache != nil && c.Cache.Available() {
		predictionCache = c.Cache
		pinger = c.Cache
	}

	predictionUC := usecase.NewPredictionUsecase(c.Engine, predictionCache, c.Config.Cache.TTL, logger.OrNop(c.Logger).Named("prediction"))
	careerUC := usecase.NewCareerUsecase(c.Engine)

	routes.NewRegistry(
		handler.NewHealthHandler(string(c.Config.Catalog.Source), len(c.Engine.Catalog().Roles()), pinger),
		handler.NewPredictionHandler(predictionUC),
		handler.NewCareerHandler(careerUC),
	).Register(app)
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
