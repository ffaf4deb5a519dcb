package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bazarbd/internal/domain/entity"
)

func TestProductQueryMatches(t *testing.T) {
	march := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	p := &entity.Product{
		Status:      entity.StatusApproved,
		Category:    "Vegetables",
		VendorEmail: "v@example.com",
		Prices: []entity.PriceEntry{
			{Price: 10, Date: march(2)},
			{Price: 12, Date: march(9)},
		},
	}

	assert.True(t, ProductQuery{}.Matches(p))
	assert.True(t, ProductQuery{Category: "VEGETABLES"}.Matches(p))
	assert.False(t, ProductQuery{Category: "Vegetable"}.Matches(p))
	assert.False(t, ProductQuery{Status: entity.StatusPending}.Matches(p))
	assert.False(t, ProductQuery{VendorEmail: "other@example.com"}.Matches(p))

	// Windows are half-open.
	assert.True(t, ProductQuery{PriceWindows: []DateWindow{{From: march(2), To: march(3)}}}.Matches(p))
	assert.False(t, ProductQuery{PriceWindows: []DateWindow{{From: march(1), To: march(2)}}}.Matches(p))

	// Each window is satisfied by its own entry.
	both := ProductQuery{PriceWindows: []DateWindow{
		{From: march(1), To: march(4)},
		{From: march(9), To: march(10)},
	}}
	assert.True(t, both.Matches(p))

	both.PriceWindows[1] = DateWindow{From: march(20), To: march(21)}
	assert.False(t, both.Matches(p))
}

func TestProductQueryWindow(t *testing.T) {
	products := make([]*entity.Product, 5)
	for i := range products {
		products[i] = &entity.Product{ItemName: string(rune('a' + i))}
	}

	assert.Len(t, ProductQuery{}.Window(products), 5)
	assert.Len(t, ProductQuery{Offset: 3}.Window(products), 2)

	page := ProductQuery{Offset: 2, Limit: 2}.Window(products)
	assert.Equal(t, "c", page[0].ItemName)
	assert.Equal(t, "d", page[1].ItemName)

	assert.Len(t, ProductQuery{Offset: 4, Limit: 10}.Window(products), 1)

	negative := ProductQuery{Offset: -12, Limit: 2}.Window(products)
	assert.Equal(t, "a", negative[0].ItemName)
	assert.Equal(t, "b", negative[1].ItemName)
	assert.NotNil(t, ProductQuery{Offset: 9, Limit: 2}.Window(products))
	assert.Empty(t, ProductQuery{Offset: 9, Limit: 2}.Window(products))
}
