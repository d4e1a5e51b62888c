package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shaheed425/jobsy/pkg/config"
	"github.com/shaheed425/jobsy/pkg/errx"
	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/application/applicationapi"
	"github.com/shaheed425/jobsy/placement/employer/employerapi"
	"github.com/shaheed425/jobsy/placement/job/jobapi"
	"github.com/shaheed425/jobsy/placement/matching/matchingapi"
	"github.com/shaheed425/jobsy/placement/notification/notificationapi"
	"github.com/shaheed425/jobsy/placement/stats/statsapi"
	"github.com/shaheed425/jobsy/placement/student/studentapi"
)

func main() {
	// 1. Configuration and Logger
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.Info("Starting Jobsy Placement API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Jobsy Placement API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes
	authMiddleware := auth.Middleware(container.TokenService)

	// Auth: /auth/login, /auth/tokens
	container.AuthHandlers.RegisterRoutes(app)

	// Students: /api/students
	studentapi.RegisterRoutes(app, container.StudentHandlers, authMiddleware)

	// Employers: /api/employers
	employerapi.RegisterRoutes(app, container.EmployerHandlers, authMiddleware)

	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, container.JobHandlers, authMiddleware)

	// Matching: /api/matching
	matchingapi.RegisterRoutes(app, container.MatchingHandlers, authMiddleware)

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, authMiddleware)

	// Notifications: /api/notifications
	notificationapi.RegisterRoutes(app, container.NotificationHandlers, authMiddleware)

	// Statistics: /api/stats
	statsapi.RegisterRoutes(app, container.StatsHandlers, authMiddleware)

	// 7. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
