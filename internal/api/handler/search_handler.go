package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
)

// SearchHandler handles HTTP requests for shopping search and history.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search proxies a free-text shopping query to the completion provider.
//
// @Summary      Run a shopping search
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Query and optional user id"
// @Success      200   {object}  searchResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Search(c.Request().Context(), ports.SearchInput{
		Query:  req.Query,
		UserID: req.UserID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			// Provider detail was already logged by the service.
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An error occurred while processing your request"})
		}
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{Response: result.Response})
}

// History returns the full search history for a user, oldest first.
//
// @Summary      Get a user's search history
// @Tags         search
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  historyResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/history/{userId} [get]
func (h *SearchHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "User not found"})
		}
		return err
	}

	history := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		history[i] = historyEntryResponse{Query: e.Query, Timestamp: e.Timestamp}
	}

	return c.JSON(http.StatusOK, historyResponse{History: history})
}
