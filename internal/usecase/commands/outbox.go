package commands

import (
	"context"
	"log/slog"
	"time"

	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/shared"
)

const maxRelayBackoff = 5 * time.Minute

// EventPublisher delivers one outbox job. Delivery is at least once: a job whose
// publish succeeded may be published again if marking it sent fails.
type EventPublisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}

type RelayStats struct {
	Sent      int
	Retried   int
	Abandoned int
}

type OutboxRelay struct {
	uow          shared.UnitOfWork
	publisher    EventPublisher
	clock        clock.Clock
	logger       *slog.Logger
	pollInterval time.Duration
	batchSize    int32
	maxAttempts  int32
}

// NewOutboxRelay rejects non-positive poll intervals, batch sizes and attempt limits.
func NewOutboxRelay(
	uow shared.UnitOfWork,
	publisher EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
	cfg config.OutboxConfig,
) (*OutboxRelay, error) {
	switch {
	case cfg.PollInterval <= 0:
		return nil, errs.Newf("outbox poll interval must be positive, got %s", cfg.PollInterval)
	case cfg.BatchSize <= 0:
		return nil, errs.Newf("outbox batch size must be positive, got %d", cfg.BatchSize)
	case cfg.MaxAttempts <= 0:
		return nil, errs.Newf("outbox max attempts must be positive, got %d", cfg.MaxAttempts)
	}

	return &OutboxRelay{
		uow:          uow,
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
		pollInterval: cfg.PollInterval,
		batchSize:    cfg.BatchSize,
		maxAttempts:  cfg.MaxAttempts,
	}, nil
}

// Run polls until ctx is cancelled. Poll errors are logged and the loop keeps going.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "outbox relay poll failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RelayOnce claims one batch of due jobs and publishes them. Claimed rows stay locked
// until the batch finishes, so concurrent relays skip them.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (RelayStats, error) {
	var stats RelayStats

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stats = RelayStats{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimPending(ctx, now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, job.ID); err != nil {
					return err
				}
				stats.Sent++
				continue
			}

			status, runAt := r.nextAttempt(job, now)
			if err := tx.Notifications().Reschedule(ctx, job.ID, status, pubErr.Error(), runAt); err != nil {
				return err
			}

			if status == shared.JobFailed {
				stats.Abandoned++
				r.logger.ErrorContext(ctx, "outbox job abandoned",
					slog.String("job_id", job.ID.String()),
					slog.String("topic", job.Topic),
					slog.Int("attempts", int(job.Attempts)+1),
					slog.String("error", pubErr.Error()),
				)
				continue
			}
			stats.Retried++
			r.logger.WarnContext(ctx, "outbox job publish failed, rescheduled",
				slog.String("job_id", job.ID.String()),
				slog.Time("run_at", runAt),
				slog.String("error", pubErr.Error()),
			)
		}
		return nil
	})
	if err != nil {
		return RelayStats{}, errs.Wrap(err, "relay outbox batch")
	}

	return stats, nil
}

// nextAttempt doubles the delay per attempt starting from the poll interval.
func (r *OutboxRelay) nextAttempt(job shared.NotificationJob, now time.Time) (shared.JobStatus, time.Time) {
	attempts := job.Attempts + 1
	if attempts >= r.maxAttempts {
		return shared.JobFailed, now
	}

	delay := r.pollInterval << uint(attempts-1)
	if delay <= 0 || delay > maxRelayBackoff {
		delay = maxRelayBackoff
	}
	return shared.JobQueued, now.Add(delay)
}
