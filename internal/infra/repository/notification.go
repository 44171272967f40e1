package repository

import (
	"context"
	"time"

	"bookit/internal/infra"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NewNotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		ID:       job.ID,
		Kind:     job.Kind,
		Topic:    job.Topic,
		EventKey: job.EventKey,
		Payload:  job.Payload,
		RunAt:    pgconv.TimeToPgtype(job.RunAt),
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimPending(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimPendingNotificationJobs(ctx, r.db, sqlc.ClaimPendingNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			EventKey:  row.EventKey,
			Payload:   row.Payload,
			Status:    shared.JobStatus(row.Status),
			Attempts:  row.Attempts,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, status shared.JobStatus, lastError string, runAt time.Time) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:        id,
		Status:    string(status),
		LastError: pgtype.Text{String: lastError, Valid: lastError != ""},
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.RescheduleNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
