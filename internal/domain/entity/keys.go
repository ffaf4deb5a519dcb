package entity

import (
	"strings"

	"github.com/google/uuid"
)

// keySpace namespaces the name-based identifiers derived below.
var keySpace = uuid.MustParse("5b1f7e0c-4a61-4d8e-9f43-0d6f8a0b2c17")

// NormalizeEmail lower-cases and trims an email used as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// WatchlistEntryID derives the primary key of a (product, user) watchlist
// pair so that a second insert of the same pair collides in the store.
func WatchlistEntryID(productID, userEmail string) string {
	return uuid.NewSHA1(keySpace, []byte("watchlist|"+productID+"|"+NormalizeEmail(userEmail))).String()
}

// UserID derives a user's primary key from the email address.
func UserID(email string) string {
	return uuid.NewSHA1(keySpace, []byte("user|"+NormalizeEmail(email))).String()
}

// SubscriberID derives a newsletter subscriber's primary key from the email.
func SubscriberID(email string) string {
	return uuid.NewSHA1(keySpace, []byte("newsletter|"+NormalizeEmail(email))).String()
}

func NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether id has the identifier format the service issues.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
