package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/ai-course-generator/internal/config"
	"alfredoptarigan/ai-course-generator/internal/handlers"
)

const (
	AppName    = "AI Course Generator API"
	AppVersion = "1.0.0"
)

// Handlers groups the request handlers mounted by NewApp.
type Handlers struct {
	Analyze *handlers.AnalyzeHandler
	Course  *handlers.CourseHandler
	Probe   *handlers.ProbeHandler
}

// Endpoints lists the public routes, shown on the index route and at startup.
var Endpoints = []string{
	"POST /api/analyze-cv",
	"POST /api/generate-course",
	"GET /api/health",
	"GET /api/test-openai",
	"GET /api/test-llm",
}

func NewApp(cfg *config.Config, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,

		// Fiber's banner is noise in container logs.
		DisableStartupMessage: !cfg.IsDevelopment(),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api")
	api.Get("/health", handlers.HandleHealth)
	api.Post("/analyze-cv", h.Analyze.HandleAnalyzeCV)
	api.Post("/generate-course", h.Course.HandleGenerateCourse)
	api.Get("/test-openai", h.Probe.HandleTestConnection)
	api.Get("/test-llm", h.Probe.HandleTestConnection)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   AppName,
			"version":   AppVersion,
			"endpoints": Endpoints,
		})
	})

	return app
}
