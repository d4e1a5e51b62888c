package matchingapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/matching/matchingsrv"
	"github.com/shaheed425/jobsy/placement/student"
)

// Handlers provides HTTP handlers for per-student matching views
type Handlers struct {
	service *matchingsrv.MatchingService
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(service *matchingsrv.MatchingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// JobsForStudent lists the open jobs a student may apply to
// GET /api/matching/students/:id/jobs
func (h *Handlers) JobsForStudent(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	jobs, err := h.service.JobsForStudent(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// RecommendedJobs ranks a student's candidate jobs by match score
// GET /api/matching/students/:id/recommendations?limit=5
func (h *Handlers) RecommendedJobs(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	limit := c.QueryInt("limit", matchingsrv.DefaultRecommendationLimit)

	recommended, err := h.service.RecommendedJobs(c.Context(), id, limit)
	if err != nil {
		return err
	}

	return c.JSON(recommended)
}

// RegisterRoutes registers all matching routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/matching", authMiddleware)

	api.Get("/students/:id/jobs", handlers.JobsForStudent)
	api.Get("/students/:id/recommendations", handlers.RecommendedJobs)
}
