package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
	"bazarbd/pkg/utils"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	latestApprovedLimit = 8
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	location    *time.Location
	logger      *slog.Logger
}

func NewProductUseCase(productRepo repository.ProductRepository, location *time.Location, logger *slog.Logger) *ProductUseCase {
	if location == nil {
		location = time.UTC
	}
	return &ProductUseCase{
		productRepo: productRepo,
		location:    location,
		logger:      logger,
	}
}

type PriceInput struct {
	Price decimal.Decimal `json:"price"`
	Date  string          `json:"date" validate:"required"`
}

type CreateProductInput struct {
	ItemName          string       `json:"itemName" validate:"required"`
	ItemDescription   string       `json:"itemDescription"`
	MarketName        string       `json:"marketName" validate:"required"`
	MarketDescription string       `json:"marketDescription"`
	Category          string       `json:"category"`
	ProductImage      string       `json:"productImage"`
	VendorEmail       string       `json:"vendorEmail" validate:"required,email"`
	VendorName        string       `json:"vendorName"`
	Status            string       `json:"status"`
	Prices            []PriceInput `json:"prices" validate:"dive"`
}

type UpdateProductInput struct {
	ItemName        string           `json:"itemName"`
	ItemDescription string           `json:"itemDescription"`
	MarketName      string           `json:"marketName"`
	ProductImage    string           `json:"productImage"`
	PricePerUnit    *decimal.Decimal `json:"pricePerUnit"`
	MarketDate      string           `json:"marketDate"`
}

// SearchInput carries the client filters of a product search. Date and the
// From/To range are independent predicates; when both are given a product
// has to satisfy both.
type SearchInput struct {
	Status      string
	Category    string
	VendorEmail string
	Date        string
	From        string
	To          string
	Sort        string
	Page        int
	Size        int
}

type SearchResult struct {
	Items []*entity.Product
	Total int64
	Page  int
	Size  int
}

func (uc *ProductUseCase) toPriceEntry(price decimal.Decimal, date string) (entity.PriceEntry, error) {
	if price.IsNegative() {
		return entity.PriceEntry{}, errors.Validation("price must not be negative")
	}
	at, err := parseTimestamp(date, uc.location)
	if err != nil {
		return entity.PriceEntry{}, err
	}
	return entity.PriceEntry{Price: price.Round(2).InexactFloat64(), Date: at}, nil
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.ItemName) == "" || strings.TrimSpace(input.MarketName) == "" {
		return nil, errors.Validation("itemName and marketName are required")
	}
	if strings.TrimSpace(input.VendorEmail) == "" {
		return nil, errors.Validation("vendorEmail is required")
	}

	prices := make([]entity.PriceEntry, 0, len(input.Prices))
	for _, p := range input.Prices {
		entry, err := uc.toPriceEntry(p.Price, p.Date)
		if err != nil {
			return nil, err
		}
		prices = append(prices, entry)
	}

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}

	now := time.Now()
	product := &entity.Product{
		ID:                entity.NewID(),
		ItemName:          strings.TrimSpace(input.ItemName),
		ItemDescription:   input.ItemDescription,
		MarketName:        strings.TrimSpace(input.MarketName),
		MarketDescription: input.MarketDescription,
		Category:          input.Category,
		ProductImage:      input.ProductImage,
		VendorEmail:       entity.NormalizeEmail(input.VendorEmail),
		VendorName:        input.VendorName,
		Status:            status,
		Prices:            prices,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", "productId", product.ID, "vendor", product.VendorEmail)
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// UpdateProduct overwrites the editable fields. A price entry is appended
// only when both PricePerUnit and MarketDate are present.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	update := repository.ProductUpdate{
		ItemName:        input.ItemName,
		ItemDescription: input.ItemDescription,
		MarketName:      input.MarketName,
		ProductImage:    input.ProductImage,
	}

	if input.PricePerUnit != nil && input.MarketDate != "" {
		entry, err := uc.toPriceEntry(*input.PricePerUnit, input.MarketDate)
		if err != nil {
			return nil, err
		}
		update.NewPrice = &entry
	}

	if err := uc.productRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) ApproveProduct(ctx context.Context, id string) error {
	return uc.productRepo.Moderate(ctx, id, repository.Moderation{Status: entity.StatusApproved})
}

func (uc *ProductUseCase) RejectProduct(ctx context.Context, id, reason, feedback string) error {
	reason, feedback = strings.TrimSpace(reason), strings.TrimSpace(feedback)
	if reason == "" || feedback == "" {
		return errors.Validation("reason and feedback are required")
	}

	return uc.productRepo.Moderate(ctx, id, repository.Moderation{
		Status:            entity.StatusRejected,
		RejectionReason:   reason,
		RejectionFeedback: feedback,
	})
}

// Search filters, paginates in storage and then orders only the fetched page
// by the first listed price.
func (uc *ProductUseCase) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if input.Page < 0 {
		input.Page = utils.DefaultPage
	}
	if input.Size <= 0 {
		input.Size = utils.DefaultPageSize
	}
	if input.Size > utils.MaxPageSize {
		input.Size = utils.MaxPageSize
	}
	if input.Page > math.MaxInt/input.Size {
		input.Page = utils.DefaultPage
	}

	query := repository.ProductQuery{
		Status:      input.Status,
		Category:    strings.TrimSpace(input.Category),
		VendorEmail: input.VendorEmail,
		Offset:      input.Page * input.Size,
		Limit:       input.Size,
	}

	if input.Date != "" {
		window, err := dayWindow(input.Date, uc.location)
		if err != nil {
			return nil, err
		}
		query.PriceWindows = append(query.PriceWindows, window)
	}

	if input.From != "" && input.To != "" {
		window, err := rangeWindow(input.From, input.To, uc.location)
		if err != nil {
			return nil, err
		}
		query.PriceWindows = append(query.PriceWindows, window)
	}

	products, total, err := uc.productRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	SortByFirstPrice(products, strings.ToLower(input.Sort))

	return &SearchResult{
		Items: products,
		Total: total,
		Page:  input.Page,
		Size:  input.Size,
	}, nil
}

// SortByFirstPrice stable-sorts products by the price at index zero of each
// price list. Products without prices go last in either direction. Any order
// other than asc or desc leaves the slice untouched.
func SortByFirstPrice(products []*entity.Product, order string) {
	if order != SortAsc && order != SortDesc {
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		pi, iok := products[i].FirstPrice()
		pj, jok := products[j].FirstPrice()
		switch {
		case !iok || !jok:
			return iok && !jok
		case order == SortAsc:
			return pi < pj
		default:
			return pi > pj
		}
	})
}

func (uc *ProductUseCase) ListLatestApproved(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.Search(ctx, repository.ProductQuery{
		Status: entity.StatusApproved,
		Limit:  latestApprovedLimit,
	})
	return products, err
}

func (uc *ProductUseCase) ListAllApproved(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.Search(ctx, repository.ProductQuery{Status: entity.StatusApproved})
	return products, err
}

func (uc *ProductUseCase) ListByVendor(ctx context.Context, vendorEmail string) ([]*entity.Product, error) {
	vendorEmail = entity.NormalizeEmail(vendorEmail)
	if vendorEmail == "" {
		return nil, errors.Validation("email is required")
	}

	products, _, err := uc.productRepo.Search(ctx, repository.ProductQuery{VendorEmail: vendorEmail})
	return products, err
}

func (uc *ProductUseCase) ListAll(ctx context.Context, page, size int) (*SearchResult, error) {
	return uc.Search(ctx, SearchInput{Page: page, Size: size})
}

// PriceHistory returns the price entries in chronological order. A missing
// product and an empty price list both yield an empty slice with a not-found
// error.
func (uc *ProductUseCase) PriceHistory(ctx context.Context, id string) ([]entity.PriceEntry, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return []entity.PriceEntry{}, errors.NotFound("Price history", err)
		}
		return nil, err
	}

	if len(product.Prices) == 0 {
		return []entity.PriceEntry{}, errors.NotFound("Price history", nil)
	}

	history := append([]entity.PriceEntry(nil), product.Prices...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history, nil
}
