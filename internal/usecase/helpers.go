package usecase

import (
	stderrors "errors"

	"bazarbd/pkg/errors"
)

// dependency passes AppErrors through and wraps anything else as a
// dependency failure.
func dependency(message string, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return errors.Dependency(message, err)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
