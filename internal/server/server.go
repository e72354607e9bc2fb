// Package server contains the HTTP surface for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"newsline/internal/config"
	"newsline/internal/database"
	"newsline/internal/middleware"
	"newsline/internal/models"
	"newsline/internal/repository"
	"newsline/internal/service"
	"newsline/internal/timeago"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config    *config.Config
	db        *gorm.DB
	accounts  *service.AccountService
	feed      *service.FeedService
	directory *service.DirectoryService
}

// NewServer creates a server instance, connecting to the database from config.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB creates a server instance over an existing database
// connection. Used by tests with an in-memory store.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	labels := timeago.ForLocale(cfg.TimeagoLocale)

	return &Server{
		config:    cfg,
		db:        db,
		accounts:  service.NewAccountService(userRepo),
		feed:      service.NewFeedService(articleRepo, userRepo, labels),
		directory: service.NewDirectoryService(userRepo, subRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.Tracing())
	}

	// CORS middleware; preflight OPTIONS requests are answered here with no body.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET, POST, PUT, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-User-Id",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", s.HealthCheck)

	// Prometheus metrics; the collector registers globally, so it is created
	// once even when several apps are assembled in one process.
	promOnce.Do(func() {
		prom = fiberprometheus.New("newsline")
	})
	prom.RegisterAt(app, "/api/metrics")
	app.Use(prom.Middleware)

	// Account endpoints
	api.Post("/auth", s.HandleAccountAction)
	api.Put("/auth", s.UpdateProfile)

	// Feed endpoints
	api.Get("/news", s.ListArticles)
	api.Post("/news", s.HandleFeedAction)

	// Directory endpoints
	api.Get("/users", s.ListUsers)
	api.Post("/users", s.HandleDirectoryAction)
}

// HealthCheck handles health check requests.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// App assembles a configured Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Newsline API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Router-level errors carry their own status; only unknown
			// errors fall through to the internal branch.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				switch fiberErr.Code {
				case fiber.StatusMethodNotAllowed:
					return models.RespondWithError(c, models.NewMethodNotAllowedError())
				case fiber.StatusNotFound:
					return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
						Error: fiberErr.Message,
						Code:  models.CodeNotFound,
					})
				default:
					return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Error: fiberErr.Message})
				}
			}
			return models.RespondWithError(c, err)
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server.
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("Server starting on port " + s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB: " + cerr.Error())
		}
	}
	middleware.Logger.Info("Server shutdown complete")
	return nil
}
