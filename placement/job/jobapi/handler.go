package jobapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/job"
	"github.com/shaheed425/jobsy/placement/job/jobsrv"
	"github.com/shaheed425/jobsy/placement/matching"
	"github.com/shaheed425/jobsy/placement/matching/matchingsrv"
)

// Handlers provides HTTP handlers for job browsing, search, and edits
type Handlers struct {
	jobs     *jobsrv.JobService
	matching *matchingsrv.MatchingService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(jobs *jobsrv.JobService, matchingService *matchingsrv.MatchingService) *Handlers {
	return &Handlers{
		jobs:     jobs,
		matching: matchingService,
	}
}

// ListJobs retrieves all jobs regardless of status
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListJobs(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListActiveJobs retrieves open jobs, newest first
// GET /api/jobs/active
func (h *Handlers) ListActiveJobs(c *fiber.Ctx) error {
	jobs, err := h.matching.ActiveJobs(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// SearchJobs filters jobs by the posted criteria
// POST /api/jobs/search
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	var filters matching.SearchFilters
	if err := c.BodyParser(&filters); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	jobs, err := h.matching.SearchJobs(c.Context(), filters)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJob retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(j)
}

// JobDetails retrieves a job with its derived read-side context
// GET /api/jobs/:id/details
func (h *Handlers) JobDetails(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	details, err := h.jobs.JobDetails(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// UpdateJob applies a partial edit to a posted job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	updated, err := h.jobs.UpdateJob(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/jobs", authMiddleware)

	api.Get("/", handlers.ListJobs)
	api.Get("/active", handlers.ListActiveJobs)
	api.Post("/search", handlers.SearchJobs)
	api.Get("/:id", handlers.GetJob)
	api.Get("/:id/details", handlers.JobDetails)
	api.Put("/:id", auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.UpdateJob)
}
