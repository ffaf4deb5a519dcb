package repository

import (
	"context"
	"strings"
	"time"

	"bazarbd/internal/domain/entity"
)

// DateWindow is a half-open interval [From, To).
type DateWindow struct {
	From time.Time
	To   time.Time
}

// ProductQuery is the predicate and page window of a product search. Every
// non-empty field must hold for a product to match. Each price window is an
// existence test: some price entry must fall inside it.
type ProductQuery struct {
	Status       string
	Category     string // case-insensitive exact match
	VendorEmail  string
	PriceWindows []DateWindow

	Offset int
	Limit  int // zero means no limit
}

// Matches evaluates the predicate part of the query against p. Drivers that
// cannot express a predicate natively filter with it in memory.
func (q ProductQuery) Matches(p *entity.Product) bool {
	if q.Status != "" && p.Status != q.Status {
		return false
	}
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if q.VendorEmail != "" && p.VendorEmail != q.VendorEmail {
		return false
	}
	for _, w := range q.PriceWindows {
		if !p.HasPriceBetween(w.From, w.To) {
			return false
		}
	}
	return true
}

// Window applies Offset/Limit to an already filtered slice. A negative
// offset counts as zero.
func (q ProductQuery) Window(products []*entity.Product) []*entity.Product {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Offset >= len(products) {
		return []*entity.Product{}
	}
	end := len(products)
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return products[q.Offset:end]
}

// ProductUpdate carries the editable fields of a product. NewPrice, when set,
// is appended to the price list.
type ProductUpdate struct {
	ItemName        string
	ItemDescription string
	MarketName      string
	ProductImage    string
	NewPrice        *entity.PriceEntry
}

// Moderation is a status change together with its rejection details.
type Moderation struct {
	Status            string
	RejectionReason   string
	RejectionFeedback string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Search returns the page selected by q and the number of all matches.
	Search(ctx context.Context, q ProductQuery) ([]*entity.Product, int64, error)
	Update(ctx context.Context, id string, update ProductUpdate) error
	Moderate(ctx context.Context, id string, moderation Moderation) error
	Delete(ctx context.Context, id string) error
}
