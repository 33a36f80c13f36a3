package api

import (
	"errors"
	"net/http"

	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/httperr"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/clock"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	clock           clock.Clock
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		clock:           clk,
	}
}

// @Summary Create booking
// @Description Request a booking for an item over a time window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), userID, commands.CreateBookingRequest{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking", nil)
		case errors.Is(err, commands.ErrOwnItemBooking):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot book your own item", nil)
		case errors.Is(err, commands.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondBooking(c, http.StatusCreated, view)
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking (item owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var q reqdto.DecideBookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'approved' is required", nil)
		return
	}

	view, err := h.bookingCommands.Decide(c.Request.Context(), userID, bookingID, *q.Approved)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking status already set", nil)
		case errors.Is(err, commands.ErrSelfDecision):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot decide your own booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondBooking(c, http.StatusOK, view)
}

// @Summary Get booking
// @Description Get booking by ID (booker or item owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, queries.ErrBookingAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not a participant of this booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondBooking(c, http.StatusOK, view)
}

// @Summary List own bookings
// @Description List bookings the current user requested, optionally filtered
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param filter query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.listBookings(c, queries.RoleBooker)
}

// @Summary List bookings for owned items
// @Description List bookings made against the current user's items, optionally filtered
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param filter query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, queries.RoleOwner)
}

func (h *BookingHandler) listBookings(c *gin.Context, role queries.Role) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter, err := queries.ParseFilter(q.Filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
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

	views, err := h.bookingQueries.List(c.Request.Context(), userID, role, filter, h.clock.Now(), page)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) respondBooking(c *gin.Context, status int, view *queries.BookingView) {
	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, response)
}
