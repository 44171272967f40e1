package components

import (
	"context"
	"log/slog"
	"sync"

	"bookit/internal/infra/kafka"
	"bookit/internal/pkg/config"
	"bookit/internal/usecase/commands"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		NewEventPublisher,
		commands.NewOutboxRelay,
		func(cfg config.Config) config.OutboxConfig {
			return cfg.Outbox
		},
	),
	fx.Invoke(startOutboxRelay),
)

// NewEventPublisher writes to Kafka when brokers are configured and to the log otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka brokers not configured, booking events go to the log")
		return kafka.NewLogPublisher(logger), nil
	}

	pub, err := kafka.NewPublisher(cfg.Kafka, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func startOutboxRelay(lc fx.Lifecycle, cfg config.Config, relay *commands.OutboxRelay, logger *slog.Logger) {
	if !cfg.Outbox.Enabled {
		logger.Info("outbox relay disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			logger.Info("outbox relay started", "poll_interval", cfg.Outbox.PollInterval.String())
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}
