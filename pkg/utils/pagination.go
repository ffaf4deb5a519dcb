package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// PaginationParams represents zero-based pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts page and size from the query string. Malformed
// or out of range values fall back to the defaults instead of failing.
func GetPaginationParams(c echo.Context) PaginationParams {
	return ParsePagination(c.QueryParam("page"), c.QueryParam("size"))
}

func ParsePagination(pageParam, sizeParam string) PaginationParams {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 0 {
		page = DefaultPage
	}

	pageSize, err := strconv.Atoi(sizeParam)
	if err != nil || pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page > math.MaxInt/pageSize {
		page = DefaultPage
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   page * pageSize,
	}
}
