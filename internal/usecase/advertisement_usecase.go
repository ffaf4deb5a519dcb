package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/internal/domain/service"
	"bazarbd/pkg/errors"
)

const initialAdStatus = "pending"

type AdvertisementUseCase struct {
	adRepo   repository.AdvertisementRepository
	userRepo repository.UserRepository
	images   service.ImageStore
	folder   string
	logger   *slog.Logger
}

func NewAdvertisementUseCase(
	adRepo repository.AdvertisementRepository,
	userRepo repository.UserRepository,
	images service.ImageStore,
	folder string,
	logger *slog.Logger,
) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		adRepo:   adRepo,
		userRepo: userRepo,
		images:   images,
		folder:   folder,
		logger:   logger,
	}
}

// ImageUpload is an image file received with a request.
type ImageUpload struct {
	File        io.Reader
	ContentType string
}

type CreateAdvertisementInput struct {
	AdTitle     string
	Description string
	VendorEmail string
	ImageURL    string
	Image       *ImageUpload
}

// UpdateAdvertisementInput leaves nil fields unchanged.
type UpdateAdvertisementInput struct {
	AdTitle     *string
	Description *string
	Image       *ImageUpload
}

func (uc *AdvertisementUseCase) CreateAdvertisement(ctx context.Context, input CreateAdvertisementInput) (*entity.Advertisement, error) {
	title := strings.TrimSpace(input.AdTitle)
	description := strings.TrimSpace(input.Description)
	email := entity.NormalizeEmail(input.VendorEmail)
	imageURL := strings.TrimSpace(input.ImageURL)

	if title == "" || description == "" || email == "" {
		return nil, errors.Validation("adTitle, description and vendorEmail are required")
	}
	if imageURL == "" && input.Image == nil {
		return nil, errors.Validation("an image file or imageUrl is required")
	}

	vendor, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, err
	}

	var uploaded *service.UploadedImage
	if input.Image != nil {
		uploaded, err = uc.images.Upload(ctx, input.Image.File, input.Image.ContentType, uc.folder)
		if err != nil {
			return nil, errors.Dependency("Failed to upload image", err)
		}
		imageURL = uploaded.URL
	}

	now := time.Now()
	ad := &entity.Advertisement{
		ID:          entity.NewID(),
		AdTitle:     title,
		Description: description,
		VendorEmail: email,
		VendorName:  valueOr(vendor.Name, "Unknown Vendor"),
		ImageURL:    imageURL,
		Status:      initialAdStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if uploaded != nil {
		ad.ImagePublicID = uploaded.PublicID
	}

	if err := uc.adRepo.Create(ctx, ad); err != nil {
		if uploaded != nil {
			uc.discardImage(ctx, uploaded.PublicID, "create failed")
		}
		return nil, dependency("Failed to create advertisement", err)
	}

	uc.logger.Info("advertisement created", "adId", ad.ID, "vendor", email)
	return ad, nil
}

func (uc *AdvertisementUseCase) ListAdvertisements(ctx context.Context, status, vendorEmail string) ([]*entity.Advertisement, error) {
	return uc.adRepo.List(ctx, repository.AdvertisementFilter{
		Status:      strings.TrimSpace(status),
		VendorEmail: entity.NormalizeEmail(vendorEmail),
	})
}

// UpdateStatus stores any non-empty status verbatim; advertisements have no
// transition rules.
func (uc *AdvertisementUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Advertisement, error) {
	if strings.TrimSpace(status) == "" {
		return nil, errors.Validation("status is required")
	}

	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.adRepo.Update(ctx, id, repository.AdvertisementUpdate{Status: &status, UpdatedAt: now}); err != nil {
		return nil, dependency("Failed to update advertisement status", err)
	}

	ad.Status = status
	ad.UpdatedAt = now
	return ad, nil
}

// UpdateAdvertisement replaces text fields and optionally the image. A new
// image is uploaded before the record changes; if the record cannot be
// written the new upload is removed again, otherwise the previous image is.
func (uc *AdvertisementUseCase) UpdateAdvertisement(ctx context.Context, id string, input UpdateAdvertisementInput) (*entity.Advertisement, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := repository.AdvertisementUpdate{UpdatedAt: time.Now()}
	if input.AdTitle != nil {
		title := strings.TrimSpace(*input.AdTitle)
		update.AdTitle = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		update.Description = &description
	}

	var uploaded *service.UploadedImage
	if input.Image != nil {
		uploaded, err = uc.images.Upload(ctx, input.Image.File, input.Image.ContentType, uc.folder)
		if err != nil {
			return nil, errors.Dependency("Failed to upload image", err)
		}
		update.ImageURL = &uploaded.URL
		update.ImagePublicID = &uploaded.PublicID
	}

	if err := uc.adRepo.Update(ctx, id, update); err != nil {
		if uploaded != nil {
			uc.discardImage(ctx, uploaded.PublicID, "update failed")
		}
		return nil, dependency("Failed to update advertisement", err)
	}

	if uploaded != nil && ad.ImagePublicID != "" {
		uc.discardImage(ctx, ad.ImagePublicID, "replaced")
	}

	if update.AdTitle != nil {
		ad.AdTitle = *update.AdTitle
	}
	if update.Description != nil {
		ad.Description = *update.Description
	}
	if uploaded != nil {
		ad.ImageURL = uploaded.URL
		ad.ImagePublicID = uploaded.PublicID
	}
	ad.UpdatedAt = update.UpdatedAt
	return ad, nil
}

// DeleteAdvertisement removes the record first; the image goes afterwards
// on a best-effort basis.
func (uc *AdvertisementUseCase) DeleteAdvertisement(ctx context.Context, id string) error {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.adRepo.Delete(ctx, id); err != nil {
		return err
	}

	if ad.ImagePublicID != "" {
		uc.discardImage(ctx, ad.ImagePublicID, "advertisement deleted")
	}
	return nil
}

func (uc *AdvertisementUseCase) discardImage(ctx context.Context, publicID, reason string) {
	if err := uc.images.Delete(ctx, publicID); err != nil {
		uc.logger.Warn("failed to delete image", "publicId", publicID, "reason", reason, "error", err)
	}
}
