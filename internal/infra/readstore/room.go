package readstore

import (
	"context"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AvailabilityReadStore serves the availability query side: room catalog
// rows plus the slot and conflict inputs the calculator consumes.
type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const findRoomSQL = `
SELECT r.id, r.hotel_id, h.name, r.name, r.board_type, r.quantity, r.capacity,
       r.base_price_cents, r.alt_price_cents, r.available_from, r.available_to,
       r.is_active AND h.is_active
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = $1`

func (r *AvailabilityReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, findRoomSQL, pgconv.UUIDToPgtype(id))
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return view, nil
}

const findActiveRoomsSQL = `
SELECT r.id, r.hotel_id, h.name, r.name, r.board_type, r.quantity, r.capacity,
       r.base_price_cents, r.alt_price_cents, r.available_from, r.available_to,
       r.is_active AND h.is_active
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.is_active AND h.is_active
  AND ($1::uuid IS NULL OR r.hotel_id = $1)
ORDER BY h.name, r.name`

func (r *AvailabilityReadStore) FindActiveRooms(ctx context.Context, hotelID *uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, findActiveRoomsSQL, pgconv.UUIDPtrToPgtype(hotelID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		view, scanErr := scanRoomView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return views, nil
}

const findSlotsSQL = `
SELECT date, available_count, blocked_count
FROM availability_slots
WHERE room_id = $1 AND date >= $2 AND date < $3
ORDER BY date`

func (r *AvailabilityReadStore) FindSlotsInRange(ctx context.Context, roomID uuid.UUID, rng booking.DateRange) ([]availability.Slot, error) {
	rows, err := r.db.Query(ctx, findSlotsSQL,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(rng.CheckIn()),
		pgconv.DateToPgtype(rng.CheckOut()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability slots", err)
	}
	defer rows.Close()

	var slots []availability.Slot
	for rows.Next() {
		var date pgtype.Date
		var slot availability.Slot
		if err := rows.Scan(&date, &slot.AvailableCount, &slot.BlockedCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slot.Date = pgconv.DateFromPgtype(date)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return slots, nil
}

// Half-open overlap: an existing stay conflicts when it starts before the
// requested check-out and ends after the requested check-in. Back-to-back
// stays sharing a boundary date never match.
const findConflictsSQL = `
SELECT id, res_id, units, check_in, check_out, status
FROM bookings
WHERE room_id = $1
  AND check_in < $3 AND check_out > $2
  AND status IN ('CONFIRMED', 'CHECKED_IN')
  AND ($4::uuid IS NULL OR id <> $4)
ORDER BY check_in`

func (r *AvailabilityReadStore) FindConflictingBookings(ctx context.Context, roomID uuid.UUID, rng booking.DateRange, excludeBookingID *uuid.UUID) ([]availability.Conflict, error) {
	rows, err := r.db.Query(ctx, findConflictsSQL,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(rng.CheckIn()),
		pgconv.DateToPgtype(rng.CheckOut()),
		pgconv.UUIDPtrToPgtype(excludeBookingID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load conflicting bookings", err)
	}
	defer rows.Close()

	var conflicts []availability.Conflict
	for rows.Next() {
		var (
			id       pgtype.UUID
			resID    string
			units    int32
			checkIn  pgtype.Date
			checkOut pgtype.Date
			status   string
		)
		if err := rows.Scan(&id, &resID, &units, &checkIn, &checkOut, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflict row", err)
		}
		stay, rangeErr := booking.NewDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
		if rangeErr != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid stay range", rangeErr)
		}
		conflicts = append(conflicts, availability.Conflict{
			BookingID: uuid.UUID(id.Bytes),
			ResID:     resID,
			Units:     units,
			Stay:      stay,
			Status:    booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conflict rows", err)
	}
	return conflicts, nil
}

type roomScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row roomScanner) (*queries.RoomView, error) {
	var (
		view      queries.RoomView
		id        pgtype.UUID
		hotelID   pgtype.UUID
		capacity  pgtype.Int4
		altPrice  pgtype.Int8
		availFrom pgtype.Date
		availTo   pgtype.Date
	)
	err := row.Scan(
		&id, &hotelID, &view.HotelName, &view.Name, &view.BoardType,
		&view.Quantity, &capacity, &view.BasePriceCents, &altPrice,
		&availFrom, &availTo, &view.IsActive,
	)
	if err != nil {
		return nil, err
	}
	view.ID = uuid.UUID(id.Bytes)
	view.HotelID = uuid.UUID(hotelID.Bytes)
	view.Capacity = pgconv.Int32PtrFromPgtype(capacity)
	view.AltPriceCents = pgconv.Int64PtrFromPgtype(altPrice)
	view.AvailableFrom = pgconv.DatePtrFromPgtype(availFrom)
	view.AvailableTo = pgconv.DatePtrFromPgtype(availTo)
	return &view, nil
}
