package kafka

import (
	"context"
	"log/slog"

	"bookit/internal/usecase/shared"
)

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	p.logger.InfoContext(ctx, "event published",
		slog.String("topic", job.Topic),
		slog.String("kind", job.Kind),
		slog.String("key", job.EventKey),
		slog.String("job_id", job.ID.String()),
		slog.String("payload", string(job.Payload)),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
