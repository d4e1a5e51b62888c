package notificationapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/kernel"
	"github.com/shaheed425/jobsy/placement/notification"
	"github.com/shaheed425/jobsy/placement/notification/notificationsrv"
)

// Handlers provides HTTP handlers for notification operations
type Handlers struct {
	service *notificationsrv.NotificationService
}

// NewHandlers creates a new notification handlers instance
func NewHandlers(service *notificationsrv.NotificationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateNotification stores an announcement
// POST /api/notifications
func (h *Handlers) CreateNotification(c *fiber.Ctx) error {
	var n notification.Notification
	if err := c.BodyParser(&n); err != nil {
		return notification.ErrInvalidNotification().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateNotification(c.Context(), &n)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListNotifications retrieves every notification
// GET /api/notifications
func (h *Handlers) ListNotifications(c *fiber.Ctx) error {
	items, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// StudentInbox retrieves a student's notifications, broadcasts included
// GET /api/notifications/students/:id
func (h *Handlers) StudentInbox(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return notification.ErrNotificationNotFound().WithDetail("student_id", c.Params("id"))
	}

	items, err := h.service.ListForStudent(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// EmployerInbox retrieves an employer's notifications, broadcasts included
// GET /api/notifications/employers/:id
func (h *Handlers) EmployerInbox(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return notification.ErrNotificationNotFound().WithDetail("employer_id", c.Params("id"))
	}

	items, err := h.service.ListForEmployer(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// StudentUnreadCount counts a student's unread notifications
// GET /api/notifications/students/:id/unread-count
func (h *Handlers) StudentUnreadCount(c *fiber.Ctx) error {
	id, err := kernel.ParseStudentID(c.Params("id"))
	if err != nil {
		return notification.ErrNotificationNotFound().WithDetail("student_id", c.Params("id"))
	}

	count, err := h.service.UnreadCountForStudent(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"count": count})
}

// EmployerUnreadCount counts an employer's unread notifications
// GET /api/notifications/employers/:id/unread-count
func (h *Handlers) EmployerUnreadCount(c *fiber.Ctx) error {
	id, err := kernel.ParseEmployerID(c.Params("id"))
	if err != nil {
		return notification.ErrNotificationNotFound().WithDetail("employer_id", c.Params("id"))
	}

	count, err := h.service.UnreadCountForEmployer(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"count": count})
}

// MarkAsRead flips the read flag on a notification
// PUT /api/notifications/:id/read
func (h *Handlers) MarkAsRead(c *fiber.Ctx) error {
	id, err := kernel.ParseNotificationID(c.Params("id"))
	if err != nil {
		return notification.ErrNotificationNotFound().WithDetail("id", c.Params("id"))
	}

	n, err := h.service.MarkAsRead(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(n)
}

// RegisterRoutes registers all notification routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/notifications", authMiddleware)

	api.Post("/", auth.RequireRole(auth.RoleAdmin), handlers.CreateNotification)
	api.Get("/", auth.RequireRole(auth.RoleAdmin), handlers.ListNotifications)
	api.Get("/students/:id", handlers.StudentInbox)
	api.Get("/students/:id/unread-count", handlers.StudentUnreadCount)
	api.Get("/employers/:id", handlers.EmployerInbox)
	api.Get("/employers/:id/unread-count", handlers.EmployerUnreadCount)
	api.Put("/:id/read", handlers.MarkAsRead)
}
