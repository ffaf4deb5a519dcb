package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	productsCollection       = "products"
	usersCollection          = "users"
	reviewsCollection        = "reviews"
	watchlistCollection      = "watchlist"
	advertisementsCollection = "advertisements"
	ordersCollection         = "purchase"
	newsletterCollection     = "newsletter"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// collect drains iter and decodes every document into a T.
func collect[T any](iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}
