package shared

import (
	"context"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction. Any error from fn, a panic, or ctx
	// cancellation rolls the whole transaction back. There is no automatic retry.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	BookingByID(ctx context.Context, id int64) (*booking.Booking, error)
}

type SlotRepository interface {
	// LockForUpdate reads the slot with an exclusive row lock held until the transaction ends.
	LockForUpdate(ctx context.Context, slotID int64) (slot.Locked, error)
	Decrement(ctx context.Context, slotID int64, quantity int32) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, draft *booking.Draft, ref booking.Reference) (*booking.Booking, error)
}

type IdempotencyRepository interface {
	// TryInsert claims key and reports false when it already exists.
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	GetForUpdate(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	ReclaimExpired(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	Complete(ctx context.Context, key uuid.UUID, bookingID int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NewNotificationJob) error
	// ClaimPending locks due jobs with SKIP LOCKED so concurrent relays never share a job.
	ClaimPending(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, status JobStatus, lastError string, runAt time.Time) error
}
