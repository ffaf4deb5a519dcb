package entity

import (
	"time"
)

type Subscriber struct {
	ID           string    `json:"id" firestore:"id" bson:"_id"`
	Email        string    `json:"email" firestore:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribedAt" firestore:"subscribedAt" bson:"subscribedAt"`
}
