package statsapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/placement/stats/statssrv"
)

// Handlers provides HTTP handlers for the reporting views
type Handlers struct {
	service *statssrv.StatsService
}

// NewHandlers creates a new statistics handlers instance
func NewHandlers(service *statssrv.StatsService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ApplicationStatistics summarizes application activity
// GET /api/stats/applications
func (h *Handlers) ApplicationStatistics(c *fiber.Ctx) error {
	resp, err := h.service.ApplicationStatistics(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// JobStatistics summarizes the job board
// GET /api/stats/jobs
func (h *Handlers) JobStatistics(c *fiber.Ctx) error {
	resp, err := h.service.JobStatistics(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// NotificationStatistics summarizes the notification store
// GET /api/stats/notifications
func (h *Handlers) NotificationStatistics(c *fiber.Ctx) error {
	resp, err := h.service.NotificationStatistics(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ClosingSoonJobs lists open jobs whose deadline is near
// GET /api/stats/jobs/closing-soon?days=3
func (h *Handlers) ClosingSoonJobs(c *fiber.Ctx) error {
	days := c.QueryInt("days", statssrv.DefaultClosingSoonDays)

	jobs, err := h.service.ClosingSoonJobs(c.Context(), days)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// RegisterRoutes registers all statistics routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/stats", authMiddleware, auth.RequireRole(auth.RoleAdmin))

	api.Get("/applications", handlers.ApplicationStatistics)
	api.Get("/jobs", handlers.JobStatistics)
	api.Get("/notifications", handlers.NotificationStatistics)
	api.Get("/jobs/closing-soon", handlers.ClosingSoonJobs)
}
