package entity

import (
	"time"
)

type Review struct {
	ID        string    `json:"id" firestore:"id" bson:"_id"`
	ProductID string    `json:"productId" firestore:"productId" bson:"productId"`
	UserEmail string    `json:"userEmail" firestore:"userEmail" bson:"userEmail"`
	UserName  string    `json:"userName" firestore:"userName" bson:"userName"`
	UserPhoto string    `json:"userPhoto,omitempty" firestore:"userPhoto,omitempty" bson:"userPhoto,omitempty"`
	Rating    int       `json:"rating" firestore:"rating" bson:"rating"` // 1-5
	Comment   string    `json:"comment" firestore:"comment" bson:"comment"`
	Date      time.Time `json:"date" firestore:"date" bson:"date"`
}
