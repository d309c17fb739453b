package server

import (
	"nautto-be/internal/bootstrap"
	"nautto-be/internal/config"
	"nautto-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
		// Trailing slashes are part of every resource URL.
		StrictRouting:         true,
		ErrorHandler:          serverutils.ErrorHandler(container.Logger),
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware. The request logger wraps recover so panics are logged
	// with their request id and final status.
	app.Use(serverutils.RequestLogger(container.Logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Location",
	}))

	if cfg.Telemetry.Enabled {
		app.Use(otelfiber.Middleware())
	}

	// Routes
	registerRoutes(app, container)

	// Anything unmatched is answered with the error envelope.
	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"address": s.cfg.App.BaseURL,
		"port":    s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.MetaController.RegisterRoutes(app)

	api := app.Group("/api")
	c.UserController.RegisterRoutes(api)
	c.WidgetController.RegisterRoutes(api)
	c.LayoutController.RegisterRoutes(api)
	c.SetController.RegisterRoutes(api)
}
