package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazarbd/internal/adapter/repository/memory"
	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	apperrors "bazarbd/pkg/errors"
	"bazarbd/pkg/logger"
)

func newProductFixture(t *testing.T) (*ProductUseCase, repository.ProductRepository) {
	t.Helper()
	repo := memory.NewProductRepository()
	return NewProductUseCase(repo, time.UTC, logger.Discard()), repo
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, repo repository.ProductRepository, name string, prices ...entity.PriceEntry) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:          entity.NewID(),
		ItemName:    name,
		MarketName:  "Karwan Bazar",
		Category:    "Vegetables",
		VendorEmail: "vendor@example.com",
		Status:      entity.StatusApproved,
		Prices:      prices,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ItemName)
	}
	return out
}

func TestCreateProduct(t *testing.T) {
	uc, _ := newProductFixture(t)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, CreateProductInput{
		ItemName:    " Onion ",
		MarketName:  "Karwan Bazar",
		VendorEmail: "Vendor@Example.com",
		Prices: []PriceInput{
			{Price: decimal.RequireFromString("45.555"), Date: "2024-03-01"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Onion", product.ItemName)
	assert.Equal(t, "vendor@example.com", product.VendorEmail)
	assert.Equal(t, entity.StatusPending, product.Status)
	require.Len(t, product.Prices, 1)
	assert.Equal(t, 45.56, product.Prices[0].Price)
	assert.True(t, entity.IsValidID(product.ID))

	_, err = uc.CreateProduct(ctx, CreateProductInput{MarketName: "x", VendorEmail: "v@example.com"})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.CreateProduct(ctx, CreateProductInput{
		ItemName:    "Rice",
		MarketName:  "x",
		VendorEmail: "v@example.com",
		Prices:      []PriceInput{{Price: decimal.NewFromInt(-1), Date: "2024-03-01"}},
	})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestSearchByDateAndRangeCombine(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()

	seed(t, repo, "both", entity.PriceEntry{Price: 10, Date: day(2)}, entity.PriceEntry{Price: 12, Date: day(10)})
	seed(t, repo, "range-only", entity.PriceEntry{Price: 20, Date: day(3)})
	seed(t, repo, "date-only", entity.PriceEntry{Price: 30, Date: day(10)})

	result, err := uc.Search(ctx, SearchInput{Date: "2024-03-10"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"both", "date-only"}, names(result.Items))

	result, err = uc.Search(ctx, SearchInput{From: "2024-03-01", To: "2024-03-03"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"both", "range-only"}, names(result.Items))

	result, err = uc.Search(ctx, SearchInput{Date: "2024-03-10", From: "2024-03-01", To: "2024-03-03"})
	require.NoError(t, err)
	assert.Equal(t, []string{"both"}, names(result.Items))
	assert.EqualValues(t, 1, result.Total)

	// A lone bound is ignored.
	result, err = uc.Search(ctx, SearchInput{From: "2024-03-05"})
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)

	_, err = uc.Search(ctx, SearchInput{From: "2024-03-05", To: "2024-03-01"})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestSearchRangeIncludesWholeEndDay(t *testing.T) {
	uc, repo := newProductFixture(t)

	seed(t, repo, "late", entity.PriceEntry{Price: 1, Date: time.Date(2024, 3, 3, 23, 59, 0, 0, time.UTC)})
	seed(t, repo, "next", entity.PriceEntry{Price: 1, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)})

	result, err := uc.Search(context.Background(), SearchInput{From: "2024-03-01", To: "2024-03-03"})
	require.NoError(t, err)
	assert.Equal(t, []string{"late"}, names(result.Items))
}

func TestSearchCategoryAndPagination(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()

	for _, n := range []string{"a", "b", "c", "d", "e"} {
		seed(t, repo, n, entity.PriceEntry{Price: 1, Date: day(1)})
	}

	result, err := uc.Search(ctx, SearchInput{Category: "vegetables", Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, names(result.Items))
	assert.EqualValues(t, 5, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.Size)

	result, err = uc.Search(ctx, SearchInput{Category: "fruit"})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 0, result.Total)

	result, err = uc.Search(ctx, SearchInput{Page: -3, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Page)
	assert.Equal(t, 5, len(result.Items))
}

func TestSearchHugePageFallsBackToFirstPage(t *testing.T) {
	uc, repo := newProductFixture(t)
	seed(t, repo, "only")

	var result *SearchResult
	require.NotPanics(t, func() {
		var err error
		result, err = uc.Search(context.Background(), SearchInput{Page: 1537228672809129302, Size: 6})
		require.NoError(t, err)
	})
	assert.Equal(t, 0, result.Page)
	assert.Equal(t, []string{"only"}, names(result.Items))
}

func TestSearchSortsOnlyTheFetchedPage(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()

	seed(t, repo, "fifty", entity.PriceEntry{Price: 50, Date: day(1)})
	seed(t, repo, "forty", entity.PriceEntry{Price: 40, Date: day(1)})
	seed(t, repo, "ten", entity.PriceEntry{Price: 10, Date: day(1)})
	seed(t, repo, "thirty", entity.PriceEntry{Price: 30, Date: day(1)})

	first, err := uc.Search(ctx, SearchInput{Sort: SortAsc, Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"forty", "fifty"}, names(first.Items))
	assert.EqualValues(t, 4, first.Total)

	second, err := uc.Search(ctx, SearchInput{Sort: SortAsc, Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"ten", "thirty"}, names(second.Items))
}

func TestSortByFirstPrice(t *testing.T) {
	mk := func(name string, prices ...float64) *entity.Product {
		p := &entity.Product{ItemName: name}
		for _, v := range prices {
			p.Prices = append(p.Prices, entity.PriceEntry{Price: v})
		}
		return p
	}

	products := []*entity.Product{
		mk("none"),
		mk("fifty-then-one", 50, 1),
		mk("ten", 10),
		mk("ten-again", 10),
	}

	asc := append([]*entity.Product(nil), products...)
	SortByFirstPrice(asc, SortAsc)
	assert.Equal(t, []string{"ten", "ten-again", "fifty-then-one", "none"}, names(asc))

	desc := append([]*entity.Product(nil), products...)
	SortByFirstPrice(desc, SortDesc)
	assert.Equal(t, []string{"fifty-then-one", "ten", "ten-again", "none"}, names(desc))

	untouched := append([]*entity.Product(nil), products...)
	SortByFirstPrice(untouched, "price")
	assert.Equal(t, names(products), names(untouched))
}

func TestUpdateProductAppendsPrice(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()
	p := seed(t, repo, "Potato", entity.PriceEntry{Price: 30, Date: day(1)})

	price := decimal.RequireFromString("32.5")
	updated, err := uc.UpdateProduct(ctx, p.ID, UpdateProductInput{
		ItemName:     "Potato",
		MarketName:   "New Market",
		PricePerUnit: &price,
		MarketDate:   "2024-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Market", updated.MarketName)
	require.Len(t, updated.Prices, 2)
	assert.Equal(t, 32.5, updated.Prices[1].Price)

	// Without a market date no price is appended.
	updated, err = uc.UpdateProduct(ctx, p.ID, UpdateProductInput{ItemName: "Potato", PricePerUnit: &price})
	require.NoError(t, err)
	assert.Len(t, updated.Prices, 2)

	_, err = uc.UpdateProduct(ctx, entity.NewID(), UpdateProductInput{ItemName: "x"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestModeration(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()
	p := seed(t, repo, "Garlic")

	err := uc.RejectProduct(ctx, p.ID, "", "feedback")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	require.NoError(t, uc.RejectProduct(ctx, p.ID, "blurry photo", "retake it"))
	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	assert.Equal(t, "blurry photo", got.RejectionReason)
	assert.Equal(t, "retake it", got.RejectionFeedback)

	require.NoError(t, uc.ApproveProduct(ctx, p.ID))
	got, err = uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)

	assert.True(t, apperrors.IsNotFound(uc.ApproveProduct(ctx, entity.NewID())))
}

func TestListings(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seed(t, repo, "approved")
	}
	pending := seed(t, repo, "pending")
	require.NoError(t, repo.Moderate(ctx, pending.ID, repository.Moderation{Status: entity.StatusPending}))

	latest, err := uc.ListLatestApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, latestApprovedLimit)

	all, err := uc.ListAllApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	mine, err := uc.ListByVendor(ctx, "VENDOR@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 11)

	_, err = uc.ListByVendor(ctx, " ")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestPriceHistory(t *testing.T) {
	uc, repo := newProductFixture(t)
	ctx := context.Background()

	p := seed(t, repo, "Lentil",
		entity.PriceEntry{Price: 3, Date: day(3)},
		entity.PriceEntry{Price: 1, Date: day(1)},
		entity.PriceEntry{Price: 2, Date: day(2)},
	)

	history, err := uc.PriceHistory(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{history[0].Price, history[1].Price, history[2].Price})

	same := seed(t, repo, "Same day",
		entity.PriceEntry{Price: 9, Date: day(5)},
		entity.PriceEntry{Price: 7, Date: day(4)},
		entity.PriceEntry{Price: 8, Date: day(5)},
		entity.PriceEntry{Price: 6, Date: day(5)},
	)
	history, err = uc.PriceHistory(ctx, same.ID)
	require.NoError(t, err)
	got := make([]float64, 0, len(history))
	for _, entry := range history {
		got = append(got, entry.Price)
	}
	assert.Equal(t, []float64{7, 9, 8, 6}, got)

	empty := seed(t, repo, "Empty")
	history, err = uc.PriceHistory(ctx, empty.ID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NotNil(t, history)
	assert.Empty(t, history)

	history, err = uc.PriceHistory(ctx, entity.NewID())
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, history)
}
