package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/response"
)

type NewsletterHandler struct {
	newsletterUseCase *usecase.NewsletterUseCase
}

func NewNewsletterHandler(newsletterUseCase *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{newsletterUseCase: newsletterUseCase}
}

func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req usecase.SubscribeInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	subscriber, err := h.newsletterUseCase.Subscribe(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, subscriber)
}

func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.newsletterUseCase.ListSubscribers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subscribers)
}
