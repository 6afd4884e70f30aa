package repository

import (
	"context"

	"hotelops/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// AcquireAdmissionLock takes a transaction-scoped advisory lock keyed by the
// room id. Concurrent admissions for the same room queue here, so the
// capacity recheck that follows always sees every committed booking. The
// lock releases itself at commit or rollback.
func (r *RoomRepository) AcquireAdmissionLock(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		roomID.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to acquire room admission lock", err)
	}
	return nil
}
