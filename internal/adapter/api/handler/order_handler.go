package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/errors"
	"bazarbd/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request().Context(), payload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, order)
}

func (h *OrderHandler) GetBuyerOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListByBuyer(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}
