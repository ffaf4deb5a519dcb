package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req usecase.CreateReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	rating, err := queryInt(c, "rating")
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), usecase.ListReviewsInput{
		ProductID:  c.QueryParam("productId"),
		Rating:     rating,
		SortByDate: c.QueryParam("sortByDate"),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}
