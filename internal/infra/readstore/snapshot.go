package readstore

import (
	"context"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// SnapshotReadStore backs the write path's command reads. Snapshots stay
// minimal on purpose; joined presentation fields belong to the view stores.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

const roomSnapshotSQL = `
SELECT r.id, r.hotel_id, r.name, r.board_type, r.quantity, r.capacity,
       r.base_price_cents, r.alt_price_cents, r.available_from, r.available_to,
       r.is_active, h.is_active
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = $1`

func (s *SnapshotReadStore) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap      shared.RoomSnapshot
		roomID    pgtype.UUID
		hotelID   pgtype.UUID
		capacity  pgtype.Int4
		altPrice  pgtype.Int8
		availFrom pgtype.Date
		availTo   pgtype.Date
	)
	err := s.db.QueryRow(ctx, roomSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&roomID, &hotelID, &snap.Name, &snap.BoardType, &snap.Quantity, &capacity,
		&snap.BasePriceCents, &altPrice, &availFrom, &availTo,
		&snap.IsActive, &snap.HotelActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load room snapshot", err)
	}
	snap.ID = uuid.UUID(roomID.Bytes)
	snap.HotelID = uuid.UUID(hotelID.Bytes)
	snap.Capacity = pgconv.Int32PtrFromPgtype(capacity)
	snap.AltPriceCents = pgconv.Int64PtrFromPgtype(altPrice)
	snap.AvailableFrom = pgconv.DatePtrFromPgtype(availFrom)
	snap.AvailableTo = pgconv.DatePtrFromPgtype(availTo)
	return &snap, nil
}

const guestSnapshotSQL = `
SELECT id, profile_id, first_name, last_name, email, phone, notes, is_vip
FROM guests
WHERE id = $1`

func (s *SnapshotReadStore) GuestByID(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	var (
		snap    shared.GuestSnapshot
		guestID pgtype.UUID
		email   pgtype.Text
		phone   pgtype.Text
		notes   pgtype.Text
	)
	err := s.db.QueryRow(ctx, guestSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&guestID, &snap.ProfileID, &snap.FirstName, &snap.LastName,
		&email, &phone, &notes, &snap.IsVIP,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load guest snapshot", err)
	}
	snap.ID = uuid.UUID(guestID.Bytes)
	snap.Email = pgconv.StringPtrFromPgtype(email)
	snap.Phone = pgconv.StringPtrFromPgtype(phone)
	snap.Notes = pgconv.StringPtrFromPgtype(notes)
	return &snap, nil
}

const guestProfileIDTakenSQL = `
SELECT EXISTS (SELECT 1 FROM guests WHERE profile_id = $1)`

func (s *SnapshotReadStore) GuestProfileIDTaken(ctx context.Context, profileID string) (bool, error) {
	var taken bool
	if err := s.db.QueryRow(ctx, guestProfileIDTakenSQL, profileID).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to probe guest profile id", err)
	}
	return taken, nil
}

const bookingSnapshotSQL = `
SELECT id, res_id, hotel_id, room_id, guest_id, units,
       check_in, check_out, room_rate_cents, alt_rate_cents, use_alt_rate,
       total_cents, status, assigned_room_no, special_requests, notes,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (s *SnapshotReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap      shared.BookingSnapshot
		bookingID pgtype.UUID
		hotelID   pgtype.UUID
		roomID    pgtype.UUID
		guestID   pgtype.UUID
		checkIn   pgtype.Date
		checkOut  pgtype.Date
		altRate   pgtype.Int8
		roomNo    pgtype.Text
		notes     pgtype.Text
		created   pgtype.Timestamptz
		updated   pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, bookingSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &snap.ResID, &hotelID, &roomID, &guestID, &snap.Units,
		&checkIn, &checkOut, &snap.RoomRateCents, &altRate, &snap.UseAltRate,
		&snap.TotalCents, &snap.Status, &roomNo, &snap.SpecialRequests, &notes,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking snapshot", err)
	}
	snap.ID = uuid.UUID(bookingID.Bytes)
	snap.HotelID = uuid.UUID(hotelID.Bytes)
	snap.RoomID = uuid.UUID(roomID.Bytes)
	snap.GuestID = uuid.UUID(guestID.Bytes)
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.AltRateCents = pgconv.Int64PtrFromPgtype(altRate)
	snap.AssignedRoomNo = pgconv.StringPtrFromPgtype(roomNo)
	snap.Notes = pgconv.StringPtrFromPgtype(notes)
	snap.CreatedAt = pgconv.TimeFromPgtype(created)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &snap, nil
}

const latestPaymentSQL = `
SELECT id, booking_id, method, total_cents, paid_cents, remaining_cents, due_date, status, created_at
FROM payments
WHERE booking_id = $1
ORDER BY created_at DESC
LIMIT 1`

func (s *SnapshotReadStore) LatestPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var (
		snap    shared.PaymentSnapshot
		id      pgtype.UUID
		bID     pgtype.UUID
		dueDate pgtype.Date
		created pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, latestPaymentSQL, pgconv.UUIDToPgtype(bookingID)).Scan(
		&id, &bID, &snap.Method, &snap.TotalCents, &snap.PaidCents,
		&snap.RemainingCents, &dueDate, &snap.Status, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load payment snapshot", err)
	}
	snap.ID = uuid.UUID(id.Bytes)
	snap.BookingID = uuid.UUID(bID.Bytes)
	snap.DueDate = pgconv.DatePtrFromPgtype(dueDate)
	snap.CreatedAt = pgconv.TimeFromPgtype(created)
	return &snap, nil
}

func (s *SnapshotReadStore) SlotsInRange(ctx context.Context, roomID uuid.UUID, rng booking.DateRange) ([]availability.Slot, error) {
	return NewAvailabilityReadStore(s.db).FindSlotsInRange(ctx, roomID, rng)
}

func (s *SnapshotReadStore) ConflictingBookings(ctx context.Context, roomID uuid.UUID, rng booking.DateRange, excludeBookingID *uuid.UUID) ([]availability.Conflict, error) {
	return NewAvailabilityReadStore(s.db).FindConflictingBookings(ctx, roomID, rng, excludeBookingID)
}
