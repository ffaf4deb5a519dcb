package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/response"
	"bazarbd/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type rejectProductRequest struct {
	Reason   string `json:"reason" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetLatestProducts(c echo.Context) error {
	products, err := h.productUseCase.ListLatestApproved(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetVendorProducts(c echo.Context) error {
	products, err := h.productUseCase.ListByVendor(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	result, err := h.productUseCase.ListAll(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, result.Items, result.Total, result.Page, result.Size)
}

func (h *ProductHandler) GetAllApprovedProducts(c echo.Context) error {
	products, err := h.productUseCase.ListAllApproved(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	result, err := h.productUseCase.Search(c.Request().Context(), usecase.SearchInput{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Date:     c.QueryParam("date"),
		From:     c.QueryParam("from"),
		To:       c.QueryParam("to"),
		Sort:     c.QueryParam("sort"),
		Page:     pagination.Page,
		Size:     pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, result.Items, result.Total, result.Page, result.Size)
}

// GetPriceHistory answers 404 with an empty list when there is no history.
func (h *ProductHandler) GetPriceHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	history, err := h.productUseCase.PriceHistory(c.Request().Context(), id)
	if err != nil {
		return response.ErrorWithData(c, err, history)
	}
	return response.Success(c, history)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req usecase.UpdateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Product deleted successfully")
}

func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.ApproveProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Product approved")
}

func (h *ProductHandler) RejectProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req rejectProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.RejectProduct(c.Request().Context(), id, req.Reason, req.Feedback); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Product rejected")
}
