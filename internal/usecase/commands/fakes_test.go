//go:build unit

package commands_test

import (
	"context"
	"time"

	"hotelops/internal/domain/availability"
	"hotelops/internal/domain/booking"
	"hotelops/internal/domain/guest"
	"hotelops/internal/infra"
	"hotelops/internal/infra/db"
	"hotelops/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work. Within runs the closure directly; on a closure
// error the recorded repository writes are restored, mirroring a rollback.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	reads := &fakeReads{
		rooms:    map[uuid.UUID]*shared.RoomSnapshot{},
		guests:   map[uuid.UUID]*shared.GuestSnapshot{},
		bookings: map[uuid.UUID]*shared.BookingSnapshot{},
		payments: map[uuid.UUID][]*shared.PaymentSnapshot{},
	}
	return &fakeUoW{
		tx: &fakeTx{
			reads:         reads,
			bookings:      &fakeBookingRepo{},
			payments:      &fakePaymentRepo{},
			guests:        &fakeGuestRepo{reads: reads},
			rooms:         &fakeRoomRepo{},
			notifications: &fakeNotificationRepo{},
			users:         &fakeUserRepo{},
		},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := u.tx.clone()
	if err := fn(ctx, u.tx); err != nil {
		*u.tx = snapshot
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeTx struct {
	reads         *fakeReads
	bookings      *fakeBookingRepo
	payments      *fakePaymentRepo
	guests        *fakeGuestRepo
	rooms         *fakeRoomRepo
	notifications *fakeNotificationRepo
	users         *fakeUserRepo
}

func (t *fakeTx) clone() fakeTx {
	cp := *t
	bookings := *t.bookings
	payments := *t.payments
	payments.created = append([]createdPayment(nil), t.payments.created...)
	bookings.created = append([]*booking.Booking(nil), t.bookings.created...)
	notifications := *t.notifications
	notifications.jobs = append([]queuedJob(nil), t.notifications.jobs...)
	cp.bookings = &bookings
	cp.payments = &payments
	cp.notifications = &notifications
	return cp
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Payments() shared.PaymentRepository           { return t.payments }
func (t *fakeTx) Guests() shared.GuestRepository               { return t.guests }
func (t *fakeTx) Rooms() shared.RoomRepository                 { return t.rooms }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeReads struct {
	rooms     map[uuid.UUID]*shared.RoomSnapshot
	guests    map[uuid.UUID]*shared.GuestSnapshot
	bookings  map[uuid.UUID]*shared.BookingSnapshot
	payments  map[uuid.UUID][]*shared.PaymentSnapshot
	slots     []availability.Slot
	conflicts []availability.Conflict
	// takenProfileIDs forces profile id probes to report collisions for
	// the first N candidates.
	takenProfileIDs int
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return room, nil
}

func (r *fakeReads) GuestByID(_ context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, notFound("guest not found")
	}
	return g, nil
}

func (r *fakeReads) GuestProfileIDTaken(_ context.Context, profileID string) (bool, error) {
	if r.takenProfileIDs > 0 {
		r.takenProfileIDs--
		return true, nil
	}
	for _, g := range r.guests {
		if g.ProfileID == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (r *fakeReads) LatestPaymentByBooking(_ context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	entries := r.payments[bookingID]
	if len(entries) == 0 {
		return nil, notFound("payment not found")
	}
	return entries[len(entries)-1], nil
}

func (r *fakeReads) SlotsInRange(_ context.Context, _ uuid.UUID, rng booking.DateRange) ([]availability.Slot, error) {
	var out []availability.Slot
	for _, s := range r.slots {
		if rng.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeReads) ConflictingBookings(_ context.Context, roomID uuid.UUID, rng booking.DateRange, excludeBookingID *uuid.UUID) ([]availability.Conflict, error) {
	var out []availability.Conflict
	for _, c := range r.conflicts {
		if excludeBookingID != nil && c.BookingID == *excludeBookingID {
			continue
		}
		if c.Stay.Overlaps(rng) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	created       []*booking.Booking
	updated       *booking.Booking
	statusUpdates map[uuid.UUID]booking.Status
	deleted       []uuid.UUID
}

func (f *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	f.created = append(f.created, b)
	return b.ID(), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	f.updated = b
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[uuid.UUID]booking.Status{}
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type createdPayment struct {
	bookingID uuid.UUID
	entry     shared.PaymentEntry
}

type fakePaymentRepo struct {
	created []createdPayment
	deleted []uuid.UUID
}

func (f *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, bookingID uuid.UUID, entry shared.PaymentEntry) (uuid.UUID, error) {
	f.created = append(f.created, createdPayment{bookingID: bookingID, entry: entry})
	return uuid.New(), nil
}

func (f *fakePaymentRepo) DeleteByBooking(_ context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	f.deleted = append(f.deleted, bookingID)
	return nil
}

// fakeGuestRepo persists into the shared reads map so resolver lookups see
// created guests. failCreates injects duplicate-key errors for the first N
// inserts.
type fakeGuestRepo struct {
	reads       *fakeReads
	failCreates int
	updates     []shared.GuestUpdate
}

func (f *fakeGuestRepo) Create(_ context.Context, _ db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	if f.failCreates > 0 {
		f.failCreates--
		return uuid.Nil, infra.WrapRepoErr("duplicate profile id", nil, infra.KindDuplicateKey)
	}
	f.reads.guests[g.ID()] = &shared.GuestSnapshot{
		ID:        g.ID(),
		ProfileID: g.ProfileID(),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email(),
		Phone:     g.Phone(),
		Notes:     g.Notes(),
		IsVIP:     g.IsVIP(),
	}
	return g.ID(), nil
}

func (f *fakeGuestRepo) Update(_ context.Context, _ db.DBTX, id uuid.UUID, fields shared.GuestUpdate) error {
	if _, ok := f.reads.guests[id]; !ok {
		return notFound("guest not found")
	}
	f.updates = append(f.updates, fields)
	return nil
}

type fakeRoomRepo struct {
	lockedRooms []uuid.UUID
}

func (f *fakeRoomRepo) AcquireAdmissionLock(_ context.Context, _ db.DBTX, roomID uuid.UUID) error {
	f.lockedRooms = append(f.lockedRooms, roomID)
	return nil
}

type queuedJob struct {
	kind  string
	topic string
	runAt time.Time
}

type fakeNotificationRepo struct {
	jobs []queuedJob
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, _ []byte, runAt time.Time) error {
	f.jobs = append(f.jobs, queuedJob{kind: kind, topic: topic, runAt: runAt})
	return nil
}

type fakeUserRepo struct {
	lastLogins []uuid.UUID
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	f.lastLogins = append(f.lastLogins, userID)
	return nil
}
