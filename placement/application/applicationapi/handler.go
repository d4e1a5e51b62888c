package applicationapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/validatex"
	"github.com/shaheed425/jobsy/placement/application"
	"github.com/shaheed425/jobsy/placement/application/applicationsrv"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SubmitApplication submits a job application
// POST /api/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidApplication().WithDetail("parse_error", err.Error())
	}

	if err := validatex.Struct(req); err != nil {
		return err
	}

	app, err := h.service.SubmitApplication(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// GetApplication retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	id, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	app, err := h.service.GetApplication(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// ListApplications retrieves all applications
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	apps, err := h.service.ListApplications(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ApplicationDetails retrieves an application with its student and job
// GET /api/applications/:id/details
func (h *Handlers) ApplicationDetails(c *fiber.Ctx) error {
	id, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	details, err := h.service.ApplicationDetails(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// UpdateStatus applies a review decision to an application
// PUT /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidApplication().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/applications", authMiddleware)

	api.Post("/", auth.RequireRole(auth.RoleAdmin, auth.RoleStudent), handlers.SubmitApplication)
	api.Get("/", auth.RequireRole(auth.RoleAdmin), handlers.ListApplications)
	api.Get("/:id", handlers.GetApplication)
	api.Get("/:id/details", handlers.ApplicationDetails)
	api.Put("/:id/status", auth.RequireRole(auth.RoleAdmin, auth.RoleEmployer), handlers.UpdateStatus)
}
