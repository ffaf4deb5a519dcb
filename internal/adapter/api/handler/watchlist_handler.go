package handler

import (
	"github.com/labstack/echo/v4"

	"bazarbd/internal/usecase"
	"bazarbd/pkg/response"
)

type WatchlistHandler struct {
	watchlistUseCase *usecase.WatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUseCase: watchlistUseCase,
	}
}

func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	var req usecase.AddToWatchlistInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.watchlistUseCase.AddToWatchlist(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, entry)
}

func (h *WatchlistHandler) GetUserWatchlist(c echo.Context) error {
	entries, err := h.watchlistUseCase.GetUserWatchlist(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *WatchlistHandler) GetAllWatchlist(c echo.Context) error {
	entries, err := h.watchlistUseCase.GetAllWatchlist(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.watchlistUseCase.RemoveFromWatchlist(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Removed from watchlist")
}
