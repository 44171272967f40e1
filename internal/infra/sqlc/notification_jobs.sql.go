package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (id, kind, topic, event_key, payload, run_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	ID       uuid.UUID          `json:"id"`
	Kind     string             `json:"kind"`
	Topic    string             `json:"topic"`
	EventKey string             `json:"event_key"`
	Payload  []byte             `json:"payload"`
	RunAt    pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.EventKey,
		arg.Payload,
		arg.RunAt,
	)
	return err
}

const claimPendingNotificationJobs = `-- name: ClaimPendingNotificationJobs :many
SELECT id, kind, topic, event_key, payload, status, attempts, last_error, run_at, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at, created_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimPendingNotificationJobsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimPendingNotificationJobs(ctx context.Context, db DBTX, arg ClaimPendingNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimPendingNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NotificationJobs{}
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.EventKey,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markNotificationJobSent = `-- name: MarkNotificationJobSent :exec
UPDATE notification_jobs
SET status     = 'sent',
    attempts   = attempts + 1,
    last_error = NULL,
    updated_at = NOW()
WHERE id = $1
`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id)
	return err
}

const rescheduleNotificationJob = `-- name: RescheduleNotificationJob :exec
UPDATE notification_jobs
SET status     = $2,
    attempts   = attempts + 1,
    last_error = $3,
    run_at     = $4,
    updated_at = NOW()
WHERE id = $1
`

type RescheduleNotificationJobParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) RescheduleNotificationJob(ctx context.Context, db DBTX, arg RescheduleNotificationJobParams) error {
	_, err := db.Exec(ctx, rescheduleNotificationJob,
		arg.ID,
		arg.Status,
		arg.LastError,
		arg.RunAt,
	)
	return err
}
