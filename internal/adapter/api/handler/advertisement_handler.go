package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/errors"
	"bazarbd/pkg/response"
)

const imageField = "image"

type AdvertisementHandler struct {
	adUseCase    *usecase.AdvertisementUseCase
	maxImageSize int64
}

func NewAdvertisementHandler(adUseCase *usecase.AdvertisementUseCase, maxImageSize int64) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUseCase:    adUseCase,
		maxImageSize: maxImageSize,
	}
}

type advertisementRequest struct {
	AdTitle     string `json:"adTitle" form:"adTitle"`
	Description string `json:"description" form:"description"`
	VendorEmail string `json:"vendorEmail" form:"vendorEmail"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// openImage returns the uploaded image file, or nil when the request carries
// none. The caller closes the returned file.
func (h *AdvertisementHandler) openImage(c echo.Context) (*usecase.ImageUpload, multipart.File, error) {
	if !isMultipart(c) {
		return nil, nil, nil
	}

	header, err := c.FormFile(imageField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, errors.BadRequest("Invalid image upload", err)
	}

	if h.maxImageSize > 0 && header.Size > h.maxImageSize {
		return nil, nil, errors.Validation("image is too large")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, nil, errors.Validation("image must be an image file")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.BadRequest("Invalid image upload", err)
	}

	return &usecase.ImageUpload{File: file, ContentType: contentType}, file, nil
}

func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	var req advertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	image, file, err := h.openImage(c)
	if err != nil {
		return response.Error(c, err)
	}
	if file != nil {
		defer file.Close()
	}

	ad, err := h.adUseCase.CreateAdvertisement(c.Request().Context(), usecase.CreateAdvertisementInput{
		AdTitle:     req.AdTitle,
		Description: req.Description,
		VendorEmail: req.VendorEmail,
		ImageURL:    req.ImageURL,
		Image:       image,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, ad)
}

func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	ads, err := h.adUseCase.ListAdvertisements(c.Request().Context(), c.QueryParam("status"), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req advertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	image, file, err := h.openImage(c)
	if err != nil {
		return response.Error(c, err)
	}
	if file != nil {
		defer file.Close()
	}

	input := usecase.UpdateAdvertisementInput{Image: image}
	if strings.TrimSpace(req.AdTitle) != "" {
		input.AdTitle = &req.AdTitle
	}
	if strings.TrimSpace(req.Description) != "" {
		input.Description = &req.Description
	}

	ad, err := h.adUseCase.UpdateAdvertisement(c.Request().Context(), id, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdvertisementHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.adUseCase.DeleteAdvertisement(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Advertisement deleted successfully")
}
