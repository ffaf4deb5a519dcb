package entity

import (
	"time"
)

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `json:"id" firestore:"id" bson:"_id"`
	Email     string    `json:"email" firestore:"email" bson:"email"`
	Name      string    `json:"name" firestore:"name" bson:"name"`
	PhotoURL  string    `json:"photoUrl,omitempty" firestore:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Role      string    `json:"role" firestore:"role" bson:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}
