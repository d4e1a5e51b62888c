package employerapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/validatex"
	"github.com/shaheed425/jobsy/placement/employer"
	"github.com/shaheed425/jobsy/placement/employer/employersrv"
	"github.com/shaheed425/jobsy/placement/job"
)

// Handlers provides HTTP handlers for employer operations
type Handlers struct {
	service *employersrv.EmployerService
}

// NewHandlers creates a new employer handlers instance
func NewHandlers(service *employersrv.EmployerService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterEmployer registers a new company
// POST /api/employers
func (h *Handlers) RegisterEmployer(c *fiber.Ctx) error {
	var req employer.RegisterEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return employer.ErrInvalidEmployer().WithDetail("parse_error", err.Error())
	}

	if err := validatex.Struct(req); err != nil {
		return err
	}

	newEmployer, err := h.service.RegisterEmployer(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newEmployer)
}

// GetEmployer retrieves an employer by ID
// GET /api/employers/:id
func (h *Handlers) GetEmployer(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	emp, err := h.service.GetEmployer(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(emp)
}

// ListEmployers retrieves all employers
// GET /api/employers
func (h *Handlers) ListEmployers(c *fiber.Ctx) error {
	employers, err := h.service.ListEmployers(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(employers)
}

// UpdateProfile applies a partial update to an employer profile
// PUT /api/employers/:id
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	var req employer.UpdateEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return employer.ErrInvalidEmployer().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateProfile(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// VerifyEmployer marks a company as verified
// POST /api/employers/:id/verify
func (h *Handlers) VerifyEmployer(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	verified, err := h.service.VerifyEmployer(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(verified)
}

// PostJob creates a job opening for a verified employer
// POST /api/employers/:id/jobs
func (h *Handlers) PostJob(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	var req job.PostJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	if err := validatex.Struct(req); err != nil {
		return err
	}

	newJob, err := h.service.PostJob(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// EmployerJobs lists all jobs posted by an employer
// GET /api/employers/:id/jobs
func (h *Handlers) EmployerJobs(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	jobs, err := h.service.EmployerJobs(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// EmployerApplications lists applications across an employer's jobs
// GET /api/employers/:id/applications
func (h *Handlers) EmployerApplications(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	apps, err := h.service.EmployerApplications(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// EmployerDashboard summarizes an employer's jobs and applications
// GET /api/employers/:id/dashboard
func (h *Handlers) EmployerDashboard(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return employer.ErrEmployerNotFound().WithDetail("id", c.Params("id"))
	}

	dashboard, err := h.service.EmployerDashboard(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}

// RegisterRoutes registers all employer routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/employers")

	// Registration is open; everything else requires authentication
	api.Post("/", handlers.RegisterEmployer)

	api.Get("/", authMiddleware, auth.RequireRole(auth.RoleAdmin), handlers.ListEmployers)
	api.Get("/:id", authMiddleware, handlers.GetEmployer)
	api.Put("/:id", authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.UpdateProfile)
	api.Post("/:id/verify", authMiddleware, auth.RequireRole(auth.RoleAdmin), handlers.VerifyEmployer)
	api.Post("/:id/jobs", authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.PostJob)
	api.Get("/:id/jobs", authMiddleware, handlers.EmployerJobs)
	api.Get("/:id/applications", authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.EmployerApplications)
	api.Get("/:id/dashboard", authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.EmployerDashboard)
}
