package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"bazarbd/internal/infrastructure/firebase"
	"bazarbd/pkg/errors"
	"bazarbd/pkg/response"
)

const (
	ContextKeyUID   = "uid"
	ContextKeyEmail = "email"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*firebase.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	enabled  bool
}

// NewAuthMiddleware returns a middleware that verifies Firebase ID tokens.
// With enabled false, or no verifier, requests pass through untouched.
func NewAuthMiddleware(verifier TokenVerifier, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		enabled:  enabled && verifier != nil,
	}
}

func (m *AuthMiddleware) Enabled() bool {
	return m.enabled
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set(ContextKeyUID, identity.UID)
		c.Set(ContextKeyEmail, strings.ToLower(identity.Email))

		return next(c)
	}
}
