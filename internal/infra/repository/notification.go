package repository

import (
	"context"
	"time"

	"hotelops/internal/infra/db"
	"hotelops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'queued')`

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, createNotificationJobSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return wrapWriteErr("failed to create notification job", err)
	}
	return nil
}

const updateNotificationJobStatusSQL = `
UPDATE notification_jobs
SET status = $2, last_error = $3, updated_at = now()
WHERE id = $1`

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	_, err := dbtx.Exec(ctx, updateNotificationJobStatusSQL,
		pgconv.UUIDToPgtype(jobID),
		status,
		pgconv.StringPtrToPgtype(lastError),
	)
	if err != nil {
		return wrapWriteErr("failed to update notification job status", err)
	}
	return nil
}
