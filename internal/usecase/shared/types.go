package shared

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	RequestHash     string
	ResultBookingID *int64
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) ExpiredAt(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobFailed JobStatus = "failed"
)

type NewNotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	EventKey string
	Payload  []byte
	RunAt    time.Time
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	EventKey  string
	Payload   []byte
	Status    JobStatus
	Attempts  int32
	LastError *string
	RunAt     time.Time
	CreatedAt time.Time
}
