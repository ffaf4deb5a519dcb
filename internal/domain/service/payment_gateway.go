package service

import (
	"context"
)

type PaymentGateway interface {
	// CreatePaymentIntent registers a card payment of amount, expressed in the
	// smallest unit of currency, and returns the client secret the storefront
	// confirms it with.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}
