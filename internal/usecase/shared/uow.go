package shared

import (
	"context"
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/domain/guest"
	"hotelops/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations, with
	// retry on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Guests() GuestRepository
	Rooms() RoomRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write path's own snapshot reads; they never depend on
// read-side view types.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	// GuestProfileIDTaken probes the unique index before an insert; a
	// duplicate-key failure would abort the surrounding transaction.
	GuestProfileIDTaken(ctx context.Context, profileID string) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	LatestPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*PaymentSnapshot, error)
	// Capacity inputs for the in-transaction admission recheck.
	SlotsInRange(ctx context.Context, roomID uuid.UUID, rng booking.DateRange) ([]availability.Slot, error)
	ConflictingBookings(ctx context.Context, roomID uuid.UUID, rng booking.DateRange, excludeBookingID *uuid.UUID) ([]availability.Conflict, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	// Create appends a ledger row; the newest row is the booking's
	// effective payment state.
	Create(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, entry PaymentEntry) (uuid.UUID, error)
	DeleteByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error
}

type GuestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, fields GuestUpdate) error
}

type RoomRepository interface {
	// AcquireAdmissionLock serializes booking admission per room for the
	// remainder of the transaction (pg_advisory_xact_lock).
	AcquireAdmissionLock(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
