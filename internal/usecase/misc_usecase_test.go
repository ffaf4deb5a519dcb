package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bazarbd/internal/adapter/repository/memory"
	"bazarbd/internal/domain/entity"
	apperrors "bazarbd/pkg/errors"
	"bazarbd/pkg/logger"
)

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		input  PaymentIntentInput
		amount int64
		code   string
	}{
		{name: "minor units", input: PaymentIntentInput{AmountInPoysha: int64Ptr(12550)}, amount: 12550},
		{name: "decimal amount", input: PaymentIntentInput{Amount: decimalPtr("125.5")}, amount: 12550},
		{name: "minor units win", input: PaymentIntentInput{AmountInPoysha: int64Ptr(100), Amount: decimalPtr("9")}, amount: 100},
		{name: "too precise", input: PaymentIntentInput{Amount: decimalPtr("1.005")}, code: "VALIDATION_ERROR"},
		{name: "beyond int64", input: PaymentIntentInput{Amount: decimalPtr("100000000000000000000")}, code: "VALIDATION_ERROR"},
		{name: "missing", input: PaymentIntentInput{}, code: "VALIDATION_ERROR"},
		{name: "zero", input: PaymentIntentInput{AmountInPoysha: int64Ptr(0)}, code: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := new(mockPaymentGateway)
			uc := NewPaymentUseCase(gateway, "bdt")

			if tt.code == "" {
				gateway.On("CreatePaymentIntent", ctx, tt.amount, "bdt").Return("pi_secret", nil).Once()
			}

			secret, err := uc.CreatePaymentIntent(ctx, tt.input)
			if tt.code != "" {
				assert.True(t, apperrors.Is(err, tt.code))
				gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pi_secret", secret)
			gateway.AssertExpectations(t)
		})
	}
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	ctx := context.Background()
	gateway := new(mockPaymentGateway)
	gateway.On("CreatePaymentIntent", ctx, int64(500), "bdt").Return("", errors.New("card declined"))

	_, err := NewPaymentUseCase(gateway, "bdt").CreatePaymentIntent(ctx, PaymentIntentInput{AmountInPoysha: int64Ptr(500)})
	assert.True(t, apperrors.Is(err, "DEPENDENCY_ERROR"))
}

func TestNewsletterSubscribe(t *testing.T) {
	uc := NewNewsletterUseCase(memory.NewNewsletterRepository(), logger.Discard())
	ctx := context.Background()

	sub, err := uc.Subscribe(ctx, SubscribeInput{Email: "Reader@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)

	_, err = uc.Subscribe(ctx, SubscribeInput{Email: "reader@example.com "})
	assert.True(t, apperrors.IsConflict(err))

	_, err = uc.Subscribe(ctx, SubscribeInput{})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	subs, err := uc.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestUserRegistrationAndRoles(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterUserInput{Email: "Admin@Example.com", Name: "Karim"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)

	_, err = uc.Register(ctx, RegisterUserInput{Email: "admin@example.com"})
	assert.True(t, apperrors.IsConflict(err))

	isAdmin, err := uc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	updated, err := uc.UpdateRole(ctx, user.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	isAdmin, err = uc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = uc.IsAdmin(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	found, err := uc.Search(ctx, "kar")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = uc.UpdateRole(ctx, entity.NewID(), entity.RoleAdmin)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviews(t *testing.T) {
	products := memory.NewProductRepository()
	uc := NewReviewUseCase(memory.NewReviewRepository(), products)
	ctx := context.Background()
	p := seed(t, products, "Honey")

	for _, rating := range []int{5, 3, 5} {
		_, err := uc.CreateReview(ctx, CreateReviewInput{ProductID: p.ID, UserEmail: "a@example.com", Rating: rating})
		require.NoError(t, err)
	}

	_, err := uc.CreateReview(ctx, CreateReviewInput{ProductID: p.ID, UserEmail: "a@example.com", Rating: 6})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.CreateReview(ctx, CreateReviewInput{ProductID: entity.NewID(), UserEmail: "a@example.com", Rating: 4})
	assert.True(t, apperrors.IsNotFound(err))

	fives, err := uc.ListReviews(ctx, ListReviewsInput{ProductID: p.ID, Rating: 5})
	require.NoError(t, err)
	assert.Len(t, fives, 2)

	none, err := uc.ListReviews(ctx, ListReviewsInput{ProductID: entity.NewID()})
	require.NoError(t, err)
	assert.Empty(t, none)

	asc, err := uc.ListReviews(ctx, ListReviewsInput{ProductID: p.ID, SortByDate: "asc"})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.False(t, asc[0].Date.After(asc[2].Date))
}

func TestOrders(t *testing.T) {
	uc := NewOrderUseCase(memory.NewOrderRepository())
	ctx := context.Background()

	order, err := uc.PlaceOrder(ctx, map[string]interface{}{"buyerEmail": "Buyer@Example.com", "quantity": 2.0})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", order.BuyerEmail)
	assert.Equal(t, 2.0, order.Payload["quantity"])

	_, err = uc.PlaceOrder(ctx, map[string]interface{}{"quantity": 1.0})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	mine, err := uc.ListByBuyer(ctx, "BUYER@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = uc.ListByBuyer(ctx, "")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}
