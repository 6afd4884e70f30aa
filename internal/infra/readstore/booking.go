package readstore

import (
	"context"
	"strconv"
	"strings"

	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"
	"hotelops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// The LATERAL join picks the booking's effective payment: the newest ledger
// row wins.
const bookingViewSQL = `
SELECT b.id, b.res_id, b.hotel_id, b.room_id, r.name,
       b.guest_id, g.profile_id, g.first_name || ' ' || g.last_name,
       b.check_in, b.check_out, b.units,
       b.room_rate_cents, b.alt_rate_cents, b.use_alt_rate, b.total_cents,
       b.status, b.assigned_room_no, b.special_requests, b.notes,
       b.created_at, b.updated_at,
       p.id, p.method, p.total_cents, p.paid_cents, p.remaining_cents,
       p.due_date, p.status, p.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN guests g ON g.id = b.guest_id
LEFT JOIN LATERAL (
    SELECT id, method, total_cents, paid_cents, remaining_cents, due_date, status, created_at
    FROM payments
    WHERE booking_id = b.id
    ORDER BY created_at DESC
    LIMIT 1
) p ON true`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+` WHERE b.id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByResID(ctx context.Context, resID string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+` WHERE b.res_id = $1`, resID)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByFilter(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.HotelID != nil {
		where = append(where, "b.hotel_id = "+arg(pgconv.UUIDToPgtype(*filter.HotelID)))
	}
	if filter.RoomID != nil {
		where = append(where, "b.room_id = "+arg(pgconv.UUIDToPgtype(*filter.RoomID)))
	}
	if filter.GuestID != nil {
		where = append(where, "b.guest_id = "+arg(pgconv.UUIDToPgtype(*filter.GuestID)))
	}
	if filter.Status != nil {
		where = append(where, "b.status = "+arg(*filter.Status))
	}
	if filter.StayFrom != nil {
		where = append(where, "b.check_out > "+arg(pgconv.DateToPgtype(*filter.StayFrom)))
	}
	if filter.StayUntil != nil {
		where = append(where, "b.check_in < "+arg(pgconv.DateToPgtype(*filter.StayUntil)))
	}

	query := `
SELECT b.id, b.res_id, r.name, g.first_name || ' ' || g.last_name,
       b.check_in, b.check_out, b.units, b.total_cents, b.status, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN guests g ON g.id = b.guest_id`
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	query += "\nORDER BY b.created_at DESC"
	query += "\nLIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item     queries.BookingListItem
			id       pgtype.UUID
			checkIn  pgtype.Date
			checkOut pgtype.Date
			created  pgtype.Timestamptz
		)
		err := rows.Scan(&id, &item.ResID, &item.RoomName, &item.GuestName,
			&checkIn, &checkOut, &item.Units, &item.TotalCents, &item.Status, &created)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row bookingScanner) (*queries.BookingView, error) {
	var (
		view     queries.BookingView
		id       pgtype.UUID
		hotelID  pgtype.UUID
		roomID   pgtype.UUID
		guestID  pgtype.UUID
		checkIn  pgtype.Date
		checkOut pgtype.Date
		altRate  pgtype.Int8
		roomNo   pgtype.Text
		notes    pgtype.Text
		created  pgtype.Timestamptz
		updated  pgtype.Timestamptz

		pID        pgtype.UUID
		pMethod    pgtype.Text
		pTotal     pgtype.Int8
		pPaid      pgtype.Int8
		pRemaining pgtype.Int8
		pDueDate   pgtype.Date
		pStatus    pgtype.Text
		pCreated   pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &view.ResID, &hotelID, &roomID, &view.RoomName,
		&guestID, &view.GuestProfileID, &view.GuestName,
		&checkIn, &checkOut, &view.Units,
		&view.RoomRateCents, &altRate, &view.UseAltRate, &view.TotalCents,
		&view.Status, &roomNo, &view.SpecialRequests, &notes,
		&created, &updated,
		&pID, &pMethod, &pTotal, &pPaid, &pRemaining,
		&pDueDate, &pStatus, &pCreated,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.HotelID = uuid.UUID(hotelID.Bytes)
	view.RoomID = uuid.UUID(roomID.Bytes)
	view.GuestID = uuid.UUID(guestID.Bytes)
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.Nights = int32(view.CheckOut.Sub(view.CheckIn).Hours() / 24)
	view.AltRateCents = pgconv.Int64PtrFromPgtype(altRate)
	view.AssignedRoomNo = pgconv.StringPtrFromPgtype(roomNo)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)

	if pID.Valid {
		view.Payment = &queries.PaymentView{
			ID:             uuid.UUID(pID.Bytes),
			Method:         pMethod.String,
			TotalCents:     pTotal.Int64,
			PaidCents:      pPaid.Int64,
			RemainingCents: pRemaining.Int64,
			DueDate:        pgconv.DatePtrFromPgtype(pDueDate),
			Status:         pStatus.String,
			CreatedAt:      pgconv.TimeFromPgtype(pCreated),
		}
	}
	return &view, nil
}
