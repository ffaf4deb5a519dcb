package entity

import (
	"time"
)

// Order is a purchase record. The payload is whatever the storefront sent
// at checkout (product, quantity, price, payment identifiers).
type Order struct {
	ID         string                 `json:"id" firestore:"id" bson:"_id"`
	BuyerEmail string                 `json:"buyerEmail" firestore:"buyerEmail" bson:"buyerEmail"`
	Payload    map[string]interface{} `json:"payload" firestore:"payload" bson:"payload"`
	CreatedAt  time.Time              `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}
