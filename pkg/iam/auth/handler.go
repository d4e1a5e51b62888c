package auth

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the configured admin account
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// Handlers exposes the authentication endpoints
type Handlers struct {
	tokens *TokenService
	admin  AdminCredentials
}

// NewHandlers creates the auth handlers
func NewHandlers(tokens *TokenService, admin AdminCredentials) *Handlers {
	return &Handlers{tokens: tokens, admin: admin}
}

// RegisterRoutes mounts the auth endpoints
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/login", h.Login)
	app.Post("/auth/tokens", Middleware(h.tokens), RequireRole(RoleAdmin), h.IssueToken)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin account and returns a bearer token
// POST /auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidCredentials().WithCause(err)
	}

	if req.Username != h.admin.Username {
		return ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials()
	}

	token, err := h.tokens.Issue(0, RoleAdmin)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token, "role": RoleAdmin})
}

type issueTokenRequest struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
}

// IssueToken mints a token for a student or employer account.
// Admin only; stands in for the institutional SSO the portal fronts.
// POST /auth/tokens
func (h *Handlers) IssueToken(c *fiber.Ctx) error {
	var req issueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRole().WithCause(err)
	}

	if !req.Role.IsValid() {
		return ErrInvalidRole().WithDetail("role", req.Role)
	}

	token, err := h.tokens.Issue(req.UserID, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token, "role": req.Role, "userId": req.UserID})
}
