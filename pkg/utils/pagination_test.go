package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, size string
		want       PaginationParams
	}{
		{"", "", PaginationParams{Page: 0, PageSize: DefaultPageSize, Offset: 0}},
		{"2", "10", PaginationParams{Page: 2, PageSize: 10, Offset: 20}},
		{"-1", "abc", PaginationParams{Page: 0, PageSize: DefaultPageSize, Offset: 0}},
		{"1", "500", PaginationParams{Page: 1, PageSize: MaxPageSize, Offset: MaxPageSize}},
		{"x", "0", PaginationParams{Page: 0, PageSize: DefaultPageSize, Offset: 0}},
		{"1537228672809129302", "6", PaginationParams{Page: 0, PageSize: 6, Offset: 0}},
		{"9223372036854775807", "100", PaginationParams{Page: 0, PageSize: 100, Offset: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePagination(tt.page, tt.size), "page=%q size=%q", tt.page, tt.size)
	}
}
