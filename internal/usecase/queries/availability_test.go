//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/infra"
	"hotelops/internal/usecase/queries"
	"hotelops/tests/common/builder"
	queriesmock "hotelops/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockAvailabilityReadStore
	queries       queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockReadStore)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) stay(nights int) booking.DateRange {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	rng, err := booking.NewDateRange(checkIn, checkIn.AddDate(0, 0, nights))
	s.Require().NoError(err)
	return rng
}

func (s *AvailabilityQueriesTestSuite) TestCheckRoom() {
	s.Run("admits a request within capacity", func() {
		room := builder.NewRoomBuilder().BuildView()
		rng := s.stay(3)

		s.mockReadStore.EXPECT().FindRoomByID(gomock.Any(), room.ID).Return(room, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), room.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), room.ID, rng, nil).Return(nil, nil)

		report, err := s.queries.CheckRoom(context.Background(), queries.CheckQuery{
			RoomID:         room.ID,
			Range:          rng,
			RequestedUnits: 2,
		})

		s.Require().NoError(err)
		s.True(report.Available)
		s.Equal(room.ID, report.RoomID)
		s.Equal(room.Name, report.RoomName)
		s.Equal(int32(5), report.AvailableUnits)
	})

	s.Run("reports conflicts when capacity is consumed", func() {
		room := builder.NewRoomBuilder().BuildView()
		rng := s.stay(3)
		conflicts := []availability.Conflict{
			{
				BookingID: uuid.New(),
				ResID:     "RES-2026-0a1b2c3d4e",
				Units:     4,
				Stay:      rng,
				Status:    booking.StatusConfirmed,
			},
		}

		s.mockReadStore.EXPECT().FindRoomByID(gomock.Any(), room.ID).Return(room, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), room.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), room.ID, rng, nil).Return(conflicts, nil)

		report, err := s.queries.CheckRoom(context.Background(), queries.CheckQuery{
			RoomID:         room.ID,
			Range:          rng,
			RequestedUnits: 2,
		})

		s.Require().NoError(err)
		s.False(report.Available)
		s.Equal(int32(1), report.AvailableUnits)
		s.Require().Len(report.Conflicts, 1)
		s.Equal("RES-2026-0a1b2c3d4e", report.Conflicts[0].ResID)
	})

	s.Run("passes the exclusion through to the conflict lookup", func() {
		room := builder.NewRoomBuilder().BuildView()
		rng := s.stay(3)
		excludeID := uuid.New()

		s.mockReadStore.EXPECT().FindRoomByID(gomock.Any(), room.ID).Return(room, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), room.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), room.ID, rng, &excludeID).Return(nil, nil)

		_, err := s.queries.CheckRoom(context.Background(), queries.CheckQuery{
			RoomID:           room.ID,
			Range:            rng,
			RequestedUnits:   1,
			ExcludeBookingID: &excludeID,
		})
		s.Require().NoError(err)
	})

	s.Run("unknown room maps to ErrRoomNotFound", func() {
		roomID := uuid.New()
		s.mockReadStore.EXPECT().FindRoomByID(gomock.Any(), roomID).
			Return(nil, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.queries.CheckRoom(context.Background(), queries.CheckQuery{
			RoomID:         roomID,
			Range:          s.stay(3),
			RequestedUnits: 1,
		})
		s.Require().ErrorIs(err, queries.ErrRoomNotFound)
	})
}

func (s *AvailabilityQueriesTestSuite) TestSearch() {
	s.Run("builds one report per active room", func() {
		hotelID := uuid.New()
		roomA := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.HotelID = hotelID }).BuildView()
		roomB := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.HotelID = hotelID
			b.Quantity = 1
		}).BuildView()
		rng := s.stay(2)

		s.mockReadStore.EXPECT().FindActiveRooms(gomock.Any(), &hotelID).
			Return([]*queries.RoomView{roomA, roomB}, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), roomA.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), roomA.ID, rng, nil).Return(nil, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), roomB.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), roomB.ID, rng, nil).Return(nil, nil)

		reports, err := s.queries.Search(context.Background(), queries.SearchQuery{
			Filter:         queries.RoomFilter{HotelID: &hotelID},
			Range:          rng,
			RequestedUnits: 2,
		})

		s.Require().NoError(err)
		s.Require().Len(reports, 2)
		s.True(reports[0].Available)
		s.False(reports[1].Available, "single-unit room cannot admit two units")
	})

	s.Run("board type and capacity filters prune before the admission math", func() {
		hotelID := uuid.New()
		fullBoard := "FULL_BOARD"
		bigRoom := int32(4)
		match := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.HotelID = hotelID
			b.BoardType = fullBoard
			b.Capacity = &bigRoom
		}).BuildView()
		wrongBoard := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.HotelID = hotelID }).BuildView()
		rng := s.stay(2)

		s.mockReadStore.EXPECT().FindActiveRooms(gomock.Any(), &hotelID).
			Return([]*queries.RoomView{match, wrongBoard}, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), match.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), match.ID, rng, nil).Return(nil, nil)

		minCap := int32(3)
		reports, err := s.queries.Search(context.Background(), queries.SearchQuery{
			Filter:         queries.RoomFilter{HotelID: &hotelID, BoardType: &fullBoard, MinCapacity: &minCap},
			Range:          rng,
			RequestedUnits: 1,
		})

		s.Require().NoError(err)
		s.Require().Len(reports, 1)
		s.Equal(match.ID, reports[0].RoomID)
	})

	s.Run("available_only drops rejected rooms from the result", func() {
		tiny := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Quantity = 1 }).BuildView()
		rng := s.stay(2)

		s.mockReadStore.EXPECT().FindActiveRooms(gomock.Any(), nil).
			Return([]*queries.RoomView{tiny}, nil)
		s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), tiny.ID, rng).Return(nil, nil)
		s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), tiny.ID, rng, nil).Return(nil, nil)

		reports, err := s.queries.Search(context.Background(), queries.SearchQuery{
			Filter:         queries.RoomFilter{AvailableOnly: true},
			Range:          rng,
			RequestedUnits: 2,
		})

		s.Require().NoError(err)
		s.Empty(reports)
	})
}

func (s *AvailabilityQueriesTestSuite) TestSearchRanges() {
	s.Run("empty range list is rejected", func() {
		_, err := s.queries.SearchRanges(context.Background(), queries.RangeSearchQuery{RequestedUnits: 1})
		s.Require().ErrorIs(err, queries.ErrInvalidSearchRange)
	})

	s.Run("results keep the caller's range order", func() {
		room := builder.NewRoomBuilder().BuildView()
		ranges := []booking.DateRange{s.stay(1), s.stay(2), s.stay(3)}

		for _, rng := range ranges {
			s.mockReadStore.EXPECT().FindActiveRooms(gomock.Any(), nil).
				Return([]*queries.RoomView{room}, nil)
			s.mockReadStore.EXPECT().FindSlotsInRange(gomock.Any(), room.ID, rng).Return(nil, nil)
			s.mockReadStore.EXPECT().FindConflictingBookings(gomock.Any(), room.ID, rng, nil).Return(nil, nil)
		}

		report, err := s.queries.SearchRanges(context.Background(), queries.RangeSearchQuery{
			Ranges:         ranges,
			RequestedUnits: 1,
		})

		s.Require().NoError(err)
		s.Require().Len(report.Ranges, 3)
		for i, rng := range ranges {
			s.Equal(rng.CheckIn(), report.Ranges[i].CheckIn)
			s.Equal(rng.CheckOut(), report.Ranges[i].CheckOut)
			s.Require().Len(report.Ranges[i].Rooms, 1)
			s.Equal(queries.SearchSummary{TotalRooms: 1, AvailableRooms: 1}, report.Ranges[i].Summary)
		}
		s.Equal(queries.SearchSummary{TotalRooms: 3, AvailableRooms: 3}, report.Overall)
	})
}
