package entity

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PriceEntry is one observed price of a product at a market date.
type PriceEntry struct {
	Price float64   `json:"price" firestore:"price" bson:"price"`
	Date  time.Time `json:"date" firestore:"date" bson:"date"`
}

type Product struct {
	ID                string       `json:"id" firestore:"id" bson:"_id"`
	ItemName          string       `json:"itemName" firestore:"itemName" bson:"itemName"`
	ItemDescription   string       `json:"itemDescription" firestore:"itemDescription" bson:"itemDescription"`
	MarketName        string       `json:"marketName" firestore:"marketName" bson:"marketName"`
	MarketDescription string       `json:"marketDescription,omitempty" firestore:"marketDescription,omitempty" bson:"marketDescription,omitempty"`
	Category          string       `json:"category" firestore:"category" bson:"category"`
	ProductImage      string       `json:"productImage" firestore:"productImage" bson:"productImage"`
	VendorEmail       string       `json:"vendorEmail" firestore:"vendorEmail" bson:"vendorEmail"`
	VendorName        string       `json:"vendorName" firestore:"vendorName" bson:"vendorName"`
	Status            string       `json:"status" firestore:"status" bson:"status"`
	RejectionReason   string       `json:"rejectionReason,omitempty" firestore:"rejectionReason" bson:"rejectionReason"`
	RejectionFeedback string       `json:"rejectionFeedback,omitempty" firestore:"rejectionFeedback" bson:"rejectionFeedback"`
	Prices            []PriceEntry `json:"prices" firestore:"prices" bson:"prices"`
	CreatedAt         time.Time    `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt" firestore:"updatedAt" bson:"updatedAt"`
}

// FirstPrice returns the price at index zero of the price list, which is the
// sort key for search results.
func (p *Product) FirstPrice() (float64, bool) {
	if len(p.Prices) == 0 {
		return 0, false
	}
	return p.Prices[0].Price, true
}

// HasPriceBetween reports whether any price entry falls in [from, to).
func (p *Product) HasPriceBetween(from, to time.Time) bool {
	for _, entry := range p.Prices {
		if !entry.Date.Before(from) && entry.Date.Before(to) {
			return true
		}
	}
	return false
}
