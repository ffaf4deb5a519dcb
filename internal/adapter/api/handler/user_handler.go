package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req usecase.RegisterUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Register(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userUseCase.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.userUseCase.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
