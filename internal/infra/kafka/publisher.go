package kafka

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

const (
	HeaderEventKind  = "event-kind"
	HeaderEventTopic = "event-topic"
	HeaderJobID      = "job-id"
	HeaderAttempt    = "attempt"
)

var (
	ErrPublisherClosed = errs.New("kafka publisher is closed")
	ErrEmptyEventKey   = errs.New("event key cannot be empty")
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes outbox jobs to a single Kafka topic. Messages are keyed by the job's
// event key so every event of one booking lands on the same partition.
type Publisher struct {
	writer MessageWriter
	topic  string
	closed bool
	mu     sync.RWMutex
}

func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, errs.New("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequireAcks),
		Compression:  compress.Snappy,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", slog.Any("detail", append([]any{msg}, args...)))
		}),
	}

	return NewPublisherWithWriter(writer, cfg.Topic), nil
}

func NewPublisherWithWriter(writer MessageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if job.EventKey == "" {
		return ErrEmptyEventKey
	}

	if err := p.writer.WriteMessages(ctx, toMessage(job)); err != nil {
		return errs.Wrapf(err, "write %s to %s", job.Topic, p.topic)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func toMessage(job shared.NotificationJob) kafka.Message {
	return kafka.Message{
		Key:   []byte(job.EventKey),
		Value: job.Payload,
		Time:  job.CreatedAt,
		Headers: []kafka.Header{
			{Key: HeaderEventKind, Value: []byte(job.Kind)},
			{Key: HeaderEventTopic, Value: []byte(job.Topic)},
			{Key: HeaderJobID, Value: []byte(job.ID.String())},
			{Key: HeaderAttempt, Value: []byte(strconv.Itoa(int(job.Attempts) + 1))},
		},
	}
}

func requiredAcks(v int) kafka.RequiredAcks {
	switch v {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
