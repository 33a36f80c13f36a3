package api

import (
	"errors"
	"net/http"

	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/httperr"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemQueries queries.ItemQueries
}

func NewItemHandler(itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{itemQueries: itemQueries}
}

// @Summary Get item
// @Description Get catalog item by ID
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List available items
// @Description List catalog items currently open for booking
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = queries.DefaultPageLimit
	}
	page, err := queries.NewPage(limit, q.Offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	views, err := h.itemQueries.ListAvailable(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}
