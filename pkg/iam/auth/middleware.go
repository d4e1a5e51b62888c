package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const authContextKey = "authContext"

// Middleware verifies the bearer token and stores the auth context in locals
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrUnauthenticated()
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return ErrInvalidToken().WithDetail("reason", "missing bearer prefix")
		}

		authCtx, err := tokens.Verify(tokenString)
		if err != nil {
			return err
		}

		c.Locals(authContextKey, authCtx)
		return c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set
func RequireRole(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrUnauthenticated()
		}
		for _, role := range roles {
			if authCtx.Role == role {
				return c.Next()
			}
		}
		return ErrForbidden().WithDetail("role", authCtx.Role)
	}
}

// GetAuthContext retrieves the caller identity set by Middleware
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(*AuthContext)
	return authCtx, ok
}

func formatSubject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func parseSubject(subject string) (int64, error) {
	return strconv.ParseInt(subject, 10, 64)
}
