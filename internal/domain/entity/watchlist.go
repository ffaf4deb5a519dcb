package entity

import (
	"time"
)

type WatchlistEntry struct {
	ID         string    `json:"id" firestore:"id" bson:"_id"`
	ProductID  string    `json:"productId" firestore:"productId" bson:"productId"`
	UserEmail  string    `json:"userEmail" firestore:"userEmail" bson:"userEmail"`
	ItemName   string    `json:"itemName" firestore:"itemName" bson:"itemName"`
	MarketName string    `json:"marketName" firestore:"marketName" bson:"marketName"`
	Date       time.Time `json:"date" firestore:"date" bson:"date"`
}
