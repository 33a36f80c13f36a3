//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"renthub/internal/handler/api"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/pkg/clock"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"
	"renthub/tests/common/builder"
	"renthub/tests/common/httptest"
	commandsmock "renthub/tests/mock/commands"
	queriesmock "renthub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
	clock        *clock.MockClock
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.clock)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookerBookings)
	s.router.GET("/bookings/owner", authMiddleware, s.handler.ListOwnerBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Status, body.Status)
		s.Equal(returnView.Item.ID, body.Item.ID)
		s.Equal(returnView.Booker.ID, body.Booker.ID)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"item_id": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "item not found", commandsError: commands.ErrItemNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Item not found"},
			{name: "user not found", commandsError: commands.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
			{name: "item unavailable", commandsError: commands.ErrItemUnavailable, expectedStatus: http.StatusBadRequest, expectedMsg: "not available"},
			{name: "own item booking", commandsError: commands.ErrOwnItemBooking, expectedStatus: http.StatusForbidden, expectedMsg: "own item"},
			{name: "invalid period", commandsError: commands.ErrInvalidPeriod, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking period"},
			{name: "internal error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecideBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s?approved=true", bookingID)
	returnView := builder.NewBookingBuilder().WithStatus("approved").BuildView()

	s.Run("success: approve returns 200 with the refreshed view", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, bookingID, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
	})

	s.Run("success: reject passes approved=false through", func() {
		rejectURL := fmt.Sprintf("/bookings/%s?approved=false", bookingID)
		rejected := builder.NewBookingBuilder().WithStatus("rejected").BuildView()

		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, bookingID, false).
			Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, rejectURL, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body.Status)
	})

	s.Run("error: 400 when approved param missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved")
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid?approved=true", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "already decided", commandsError: commands.ErrAlreadyDecided, expectedStatus: http.StatusBadRequest, expectedMsg: "already set"},
			{name: "self decision", commandsError: commands.ErrSelfDecision, expectedStatus: http.StatusForbidden, expectedMsg: "own booking"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, bookingID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 with the view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 403 for non-participant", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "participant")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: booker listing with default filter and page", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, queries.RoleBooker, queries.FilterAll, s.clock.Now(), queries.Page{Limit: queries.DefaultPageLimit, Offset: 0}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: owner listing with explicit filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, queries.RoleOwner, queries.FilterWaiting, s.clock.Now(), queries.Page{Limit: 5, Offset: 10}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?filter=waiting&limit=5&offset=10", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on unknown filter with the legal set listed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?filter=ONGOING", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "WAITING")
	})

	s.Run("error: 400 on negative offset", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?offset=-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "pagination")
	})
}
