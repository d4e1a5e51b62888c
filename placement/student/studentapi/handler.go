package studentapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/pkg/validatex"
	"github.com/shaheed425/jobsy/placement/student"
	"github.com/shaheed425/jobsy/placement/student/studentsrv"
)

// Handlers provides HTTP handlers for student operations
type Handlers struct {
	service *studentsrv.StudentService
}

// NewHandlers creates a new student handlers instance
func NewHandlers(service *studentsrv.StudentService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterStudent registers a new student profile
// POST /api/students
func (h *Handlers) RegisterStudent(c *fiber.Ctx) error {
	var req student.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return student.ErrInvalidStudent().WithDetail("parse_error", err.Error())
	}

	if err := validatex.Struct(req); err != nil {
		return err
	}

	newStudent, err := h.service.RegisterStudent(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newStudent)
}

// GetStudent retrieves a student by ID
// GET /api/students/:id
func (h *Handlers) GetStudent(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	st, err := h.service.GetStudent(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(st)
}

// ListStudents retrieves all students
// GET /api/students
func (h *Handlers) ListStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(students)
}

// UpdateProfile applies a partial update to a student profile
// PUT /api/students/:id
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	var req student.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return student.ErrInvalidStudent().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateProfile(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// StudentApplications lists the applications a student has made
// GET /api/students/:id/applications
func (h *Handlers) StudentApplications(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	apps, err := h.service.StudentApplications(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// StudentReport summarizes a student's placement activity
// GET /api/students/:id/report
func (h *Handlers) StudentReport(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return student.ErrStudentNotFound().WithDetail("id", c.Params("id"))
	}

	report, err := h.service.StudentReport(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// RegisterRoutes registers all student routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/students")

	// Registration is open; everything else requires authentication
	api.Post("/", handlers.RegisterStudent)

	api.Get("/", authMiddleware, auth.RequireRole(auth.RoleAdmin), handlers.ListStudents)
	api.Get("/:id", authMiddleware, handlers.GetStudent)
	api.Put("/:id", authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleStudent), handlers.UpdateProfile)
	api.Get("/:id/applications", authMiddleware, handlers.StudentApplications)
	api.Get("/:id/report", authMiddleware, handlers.StudentReport)
}
