package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := Dependency("Failed to get product", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")

	wrapped := fmt.Errorf("search: %w", NotFound("Product", nil))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.Equal(t, "NOT_FOUND: Product not found", NotFound("Product", nil).Error())
}

func TestStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status)
	assert.Equal(t, http.StatusConflict, Conflict("x").Status)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("x").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("x", nil).Status)
	assert.False(t, Is(errors.New("plain"), "CONFLICT"))
}
