//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelops/internal/domain/user"
	"hotelops/internal/handler/api"
	resdto "hotelops/internal/handler/dto/response"
	"hotelops/internal/usecase/queries"
	"hotelops/tests/common/builder"
	"hotelops/tests/common/httptest"
	"hotelops/tests/common/testutil"
	queriesmock "hotelops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.GET("/availability", authMiddleware, s.handler.Check)
	s.router.POST("/availability/search", authMiddleware, s.handler.Search)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func reportForRoom(room *queries.RoomView) *queries.AvailabilityReport {
	return &queries.AvailabilityReport{
		RoomID:         room.ID,
		RoomName:       room.Name,
		CheckIn:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		RequestedUnits: 1,
		Available:      true,
		AvailableUnits: room.Quantity,
		RoomActive:     true,
		WindowOK:       true,
	}
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	room := builder.NewRoomBuilder().BuildView()
	url := "/availability?room_id=" + room.ID.String() + "&check_in=2026-09-10&check_out=2026-09-13"

	s.Run("success: returns 200 OK with the admission verdict", func() {
		s.mockQueries.EXPECT().CheckRoom(gomock.Any(), gomock.Any()).
			Return(reportForRoom(room), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(room.ID, response.RoomID)
		s.True(response.Available)
		s.Equal("2026-09-10", response.CheckIn)
		s.Equal("2026-09-13", response.CheckOut)
	})

	s.Run("success: units default to one", func() {
		s.mockQueries.EXPECT().CheckRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.CheckQuery) (*queries.AvailabilityReport, error) {
				s.Equal(int32(1), q.RequestedUnits)
				s.Nil(q.ExcludeBookingID)
				return reportForRoom(room), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: exclude_booking_id passes through", func() {
		excludeID := uuid.New()
		s.mockQueries.EXPECT().CheckRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.CheckQuery) (*queries.AvailabilityReport, error) {
				s.Require().NotNil(q.ExcludeBookingID)
				s.Equal(excludeID, *q.ExcludeBookingID)
				return reportForRoom(room), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&exclude_booking_id="+excludeID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when room_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?check_in=2026-09-10&check_out=2026-09-13", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request when room_id is not a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?room_id=not-a-uuid&check_in=2026-09-10&check_out=2026-09-13", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request when exclude_booking_id is not a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&exclude_booking_id=42", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request for a reversed stay", func() {
		reversed := "/availability?room_id=" + room.ID.String() + "&check_in=2026-09-13&check_out=2026-09-10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, reversed, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid stay range")
	})

	s.Run("error: 404 Not Found for a missing room", func() {
		s.mockQueries.EXPECT().CheckRoom(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().CheckRoom(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Availability check failed")
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestSearch() {
	url := "/availability/search"
	room := builder.NewRoomBuilder().BuildView()

	reqBody := map[string]any{
		"ranges": []map[string]any{
			{"check_in": "2026-09-10", "check_out": "2026-09-13"},
			{"check_in": "2026-09-20", "check_out": "2026-09-22"},
		},
	}

	rangeSummary := queries.SearchSummary{TotalRooms: 1, AvailableRooms: 1}
	report := &queries.MultiRangeReport{
		Ranges: []queries.RangeReport{
			{
				CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
				Rooms:    []queries.AvailabilityReport{*reportForRoom(room)},
				Summary:  rangeSummary,
			},
			{
				CheckIn:  time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC),
				Rooms:    []queries.AvailabilityReport{*reportForRoom(room)},
				Summary:  rangeSummary,
			},
		},
		Overall: queries.SearchSummary{TotalRooms: 2, AvailableRooms: 2},
	}

	s.Run("success: returns one report per requested range", func() {
		s.mockQueries.EXPECT().SearchRanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.RangeSearchQuery) (*queries.MultiRangeReport, error) {
				s.Nil(q.Filter.HotelID)
				s.Equal(int32(1), q.RequestedUnits)
				s.Len(q.Ranges, 2)
				return report, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SearchRangesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Ranges, 2)
		s.Equal("2026-09-10", response.Ranges[0].CheckIn)
		s.Equal("2026-09-20", response.Ranges[1].CheckIn)
		s.Len(response.Ranges[0].Rooms, 1)
		s.Equal(1, response.Ranges[0].Summary.AvailableRooms)
		s.Equal(2, response.Overall.TotalRooms)
	})

	s.Run("success: filter fields pass through to the query", func() {
		filtered := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("board_type", "FULL_BOARD"),
			testutil.Field("min_capacity", 3),
			testutil.Field("available_only", true),
		)

		s.mockQueries.EXPECT().SearchRanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.RangeSearchQuery) (*queries.MultiRangeReport, error) {
				s.Require().NotNil(q.Filter.BoardType)
				s.Equal("FULL_BOARD", *q.Filter.BoardType)
				s.Require().NotNil(q.Filter.MinCapacity)
				s.Equal(int32(3), *q.Filter.MinCapacity)
				s.True(q.Filter.AvailableOnly)
				return report, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, filtered, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: hotel scope and units pass through", func() {
		hotelID := uuid.New()
		scoped := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("hotel_id", hotelID.String()),
			testutil.Field("units", 2),
		)

		s.mockQueries.EXPECT().SearchRanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.RangeSearchQuery) (*queries.MultiRangeReport, error) {
				s.Require().NotNil(q.Filter.HotelID)
				s.Equal(hotelID, *q.Filter.HotelID)
				s.Equal(int32(2), q.RequestedUnits)
				return report, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, scoped, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an unknown board type", func() {
		bad := testutil.DtoMap(s.T(), reqBody, testutil.Field("board_type", "ALL_INCLUSIVE"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid board type")
	})

	s.Run("error: 400 Bad Request when ranges are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"ranges": []map[string]any{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		bad := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("ranges", []map[string]any{{"check_in": "Sep 10", "check_out": "2026-09-13"}}),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for a reversed range", func() {
		bad := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("ranges", []map[string]any{{"check_in": "2026-09-13", "check_out": "2026-09-10"}}),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid stay range")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().SearchRanges(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Availability search failed")
	})
}
