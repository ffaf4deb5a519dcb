package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"bazarbd/internal/domain/service"
)

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadedImage, error) {
	args := m.Called(ctx, file, contentType, folder)
	if img, ok := args.Get(0).(*service.UploadedImage); ok {
		return img, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *mockImageStore) Close() error {
	return nil
}

type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}
