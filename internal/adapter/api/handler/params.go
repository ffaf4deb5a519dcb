package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"bazarbd/internal/domain/entity"
	"bazarbd/pkg/errors"
)

// pathID returns the named path parameter after checking it is an
// identifier issued by the service.
func pathID(c echo.Context, name string) (string, error) {
	id := c.Param(name)
	if !entity.IsValidID(id) {
		return "", errors.Validation("invalid " + name)
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the struct
// validator on it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Validation(name + " must be a number")
	}
	return v, nil
}
