package queries

import (
	"context"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/infra"
	"hotelops/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRoomNotFound       = errs.New("room not found")
	ErrInvalidSearchRange = errs.New("invalid search range")
)

const maxConcurrentRangeChecks = 4

// CheckQuery asks whether one room can admit a party over one range.
type CheckQuery struct {
	RoomID         uuid.UUID
	Range          booking.DateRange
	RequestedUnits int32
	// ExcludeBookingID removes a booking's own footprint from the conflict
	// set, used when repricing an existing booking over new dates.
	ExcludeBookingID *uuid.UUID
}

// RoomFilter narrows the candidate set before any admission math runs.
type RoomFilter struct {
	HotelID     *uuid.UUID
	RoomID      *uuid.UUID
	BoardType   *string
	MinCapacity *int32
	// AvailableOnly drops rooms whose verdict came back negative.
	AvailableOnly bool
}

type SearchQuery struct {
	Filter         RoomFilter
	Range          booking.DateRange
	RequestedUnits int32
}

type RangeSearchQuery struct {
	Filter         RoomFilter
	Ranges         []booking.DateRange
	RequestedUnits int32
}

type AvailabilityQueries interface {
	CheckRoom(ctx context.Context, q CheckQuery) (*AvailabilityReport, error)
	Search(ctx context.Context, q SearchQuery) ([]AvailabilityReport, error)
	SearchRanges(ctx context.Context, q RangeSearchQuery) (*MultiRangeReport, error)
}

type AvailabilityReadStore interface {
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindActiveRooms(ctx context.Context, hotelID *uuid.UUID) ([]*RoomView, error)
	FindSlotsInRange(ctx context.Context, roomID uuid.UUID, rng booking.DateRange) ([]availability.Slot, error)
	FindConflictingBookings(ctx context.Context, roomID uuid.UUID, rng booking.DateRange, excludeBookingID *uuid.UUID) ([]availability.Conflict, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore}
}

func (q *availabilityQueriesImpl) CheckRoom(ctx context.Context, query CheckQuery) (*AvailabilityReport, error) {
	room, err := q.readStore.FindRoomByID(ctx, query.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to load room")
	}
	return q.reportFor(ctx, room, query.Range, query.RequestedUnits, query.ExcludeBookingID)
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, query SearchQuery) ([]AvailabilityReport, error) {
	rooms, err := q.readStore.FindActiveRooms(ctx, query.Filter.HotelID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	reports := make([]AvailabilityReport, 0, len(rooms))
	for _, room := range rooms {
		if !matchesFilter(room, query.Filter) {
			continue
		}
		report, err := q.reportFor(ctx, room, query.Range, query.RequestedUnits, nil)
		if err != nil {
			return nil, err
		}
		if query.Filter.AvailableOnly && !report.Available {
			continue
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// SearchRanges fans the per-range searches out in parallel; each range is an
// independent read so ordering inside the group does not matter as long as
// the result slice keeps the caller's order.
func (q *availabilityQueriesImpl) SearchRanges(ctx context.Context, query RangeSearchQuery) (*MultiRangeReport, error) {
	if len(query.Ranges) == 0 {
		return nil, ErrInvalidSearchRange
	}

	results := make([]RangeReport, len(query.Ranges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRangeChecks)

	for i, rng := range query.Ranges {
		g.Go(func() error {
			rooms, err := q.Search(gctx, SearchQuery{Filter: query.Filter, Range: rng, RequestedUnits: query.RequestedUnits})
			if err != nil {
				return err
			}
			results[i] = RangeReport{
				CheckIn:  rng.CheckIn(),
				CheckOut: rng.CheckOut(),
				Rooms:    rooms,
				Summary:  summarize(rooms),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &MultiRangeReport{Ranges: results}
	for _, rr := range results {
		report.Overall.TotalRooms += rr.Summary.TotalRooms
		report.Overall.AvailableRooms += rr.Summary.AvailableRooms
		report.Overall.UnavailableRooms += rr.Summary.UnavailableRooms
	}
	return report, nil
}

func matchesFilter(room *RoomView, f RoomFilter) bool {
	if f.RoomID != nil && room.ID != *f.RoomID {
		return false
	}
	if f.BoardType != nil && room.BoardType != *f.BoardType {
		return false
	}
	if f.MinCapacity != nil {
		if room.Capacity == nil || *room.Capacity < *f.MinCapacity {
			return false
		}
	}
	return true
}

func summarize(rooms []AvailabilityReport) SearchSummary {
	s := SearchSummary{TotalRooms: len(rooms)}
	for _, r := range rooms {
		if r.Available {
			s.AvailableRooms++
		} else {
			s.UnavailableRooms++
		}
	}
	return s
}

func (q *availabilityQueriesImpl) reportFor(ctx context.Context, room *RoomView, rng booking.DateRange, requestedUnits int32, excludeBookingID *uuid.UUID) (*AvailabilityReport, error) {
	slots, err := q.readStore.FindSlotsInRange(ctx, room.ID, rng)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load availability slots")
	}
	conflicts, err := q.readStore.FindConflictingBookings(ctx, room.ID, rng, excludeBookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load conflicting bookings")
	}

	result := availability.Compute(toRoomInfo(room), rng, requestedUnits, slots, conflicts)
	return buildReport(room, rng, result), nil
}

func toRoomInfo(room *RoomView) availability.RoomInfo {
	return availability.RoomInfo{
		ID:            room.ID,
		Quantity:      room.Quantity,
		AvailableFrom: room.AvailableFrom,
		AvailableTo:   room.AvailableTo,
		IsActive:      room.IsActive,
	}
}

func buildReport(room *RoomView, rng booking.DateRange, result availability.Result) *AvailabilityReport {
	report := &AvailabilityReport{
		RoomID:         room.ID,
		RoomName:       room.Name,
		CheckIn:        rng.CheckIn(),
		CheckOut:       rng.CheckOut(),
		RequestedUnits: result.RequestedUnits,
		Available:      result.Available,
		AvailableUnits: result.AvailableUnits,
		BookedUnits:    result.BookedUnits,
		RoomActive:     result.RoomActive,
		WindowOK:       result.WindowOK,
	}
	for _, c := range result.Conflicts {
		report.Conflicts = append(report.Conflicts, ConflictView{
			BookingID: c.BookingID,
			ResID:     c.ResID,
			CheckIn:   c.Stay.CheckIn(),
			CheckOut:  c.Stay.CheckOut(),
			Units:     c.Units,
			Status:    string(c.Status),
		})
	}
	for _, s := range result.Slots {
		report.Slots = append(report.Slots, SlotView{
			Date:           s.Date,
			AvailableCount: s.AvailableCount,
			BlockedCount:   s.BlockedCount,
		})
	}
	return report
}
