package usecase

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	"bazarbd/internal/domain/service"
	"bazarbd/pkg/errors"
)

type PaymentUseCase struct {
	gateway  service.PaymentGateway
	currency string
}

func NewPaymentUseCase(gateway service.PaymentGateway, currency string) *PaymentUseCase {
	return &PaymentUseCase{
		gateway:  gateway,
		currency: currency,
	}
}

// PaymentIntentInput takes the amount either in poysha (the smallest unit)
// or as a decimal taka amount. AmountInPoysha wins when both are set.
type PaymentIntentInput struct {
	AmountInPoysha *int64           `json:"amountInPoysha"`
	Amount         *decimal.Decimal `json:"amount"`
}

var (
	minorUnits     = decimal.NewFromInt(100)
	maxMinorAmount = decimal.NewFromInt(math.MaxInt64)
)

func (in PaymentIntentInput) minorAmount() (int64, error) {
	switch {
	case in.AmountInPoysha != nil:
		return *in.AmountInPoysha, nil
	case in.Amount != nil:
		minor := in.Amount.Mul(minorUnits)
		if !minor.Equal(minor.Truncate(0)) {
			return 0, errors.Validation("amount must have at most two decimal places")
		}
		if minor.GreaterThan(maxMinorAmount) {
			return 0, errors.Validation("amount is too large")
		}
		return minor.IntPart(), nil
	default:
		return 0, errors.Validation("amountInPoysha is required")
	}
}

func (uc *PaymentUseCase) CreatePaymentIntent(ctx context.Context, input PaymentIntentInput) (string, error) {
	amount, err := input.minorAmount()
	if err != nil {
		return "", err
	}
	if amount <= 0 {
		return "", errors.Validation("amount must be positive")
	}

	secret, err := uc.gateway.CreatePaymentIntent(ctx, amount, uc.currency)
	if err != nil {
		return "", errors.Dependency("Failed to create payment intent", err)
	}
	return secret, nil
}
