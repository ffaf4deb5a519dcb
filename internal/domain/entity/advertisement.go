package entity

import (
	"time"
)

type Advertisement struct {
	ID            string    `json:"id" firestore:"id" bson:"_id"`
	AdTitle       string    `json:"adTitle" firestore:"adTitle" bson:"adTitle"`
	Description   string    `json:"description" firestore:"description" bson:"description"`
	VendorEmail   string    `json:"vendorEmail" firestore:"vendorEmail" bson:"vendorEmail"`
	VendorName    string    `json:"vendorName" firestore:"vendorName" bson:"vendorName"`
	ImageURL      string    `json:"imageUrl" firestore:"imageUrl" bson:"imageUrl"`
	ImagePublicID string    `json:"imagePublicId,omitempty" firestore:"imagePublicId" bson:"imagePublicId"`
	Status        string    `json:"status" firestore:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt" bson:"updatedAt"`
}
