package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"bazarbd/pkg/errors"
	"bazarbd/pkg/response"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type AdminMiddleware struct {
	checker AdminChecker
	enabled bool
}

// NewAdminMiddleware guards routes behind the admin role. It must run after
// AuthMiddleware.Authenticate and is a no-op when authentication is off.
func NewAdminMiddleware(checker AdminChecker, auth *AuthMiddleware) *AdminMiddleware {
	return &AdminMiddleware{
		checker: checker,
		enabled: auth.Enabled(),
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		email, _ := c.Get(ContextKeyEmail).(string)
		if email == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		isAdmin, err := m.checker.IsAdmin(c.Request().Context(), email)
		if err != nil {
			return response.Error(c, errors.Dependency("Failed to verify admin privileges", err))
		}
		if !isAdmin {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
