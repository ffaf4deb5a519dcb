package middleware

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "bazarbd/pkg/errors"
	"bazarbd/pkg/response"
)

type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler. It renders errors
// that escape handlers, such as unknown routes, in the common envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	var httpErr *echo.HTTPError
	if !errors.As(err, &appErr) && !errors.As(err, &httpErr) {
		m.logger.Error("unhandled error",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
	}

	if err := response.Error(c, err); err != nil {
		m.logger.Error("failed to write error response", "error", err)
	}
}
