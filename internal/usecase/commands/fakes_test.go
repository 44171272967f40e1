//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/slot"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs fn against a single mocked Tx and records whether the work committed.
type fakeUoW struct {
	tx         *fakeTx
	committed  int
	rolledBack int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		slots:         &mockSlotRepo{},
		bookings:      &mockBookingRepo{},
		idempotency:   &mockIdempotencyRepo{},
		notifications: &mockNotificationRepo{},
		reads:         &mockCommandReads{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := fn(ctx, u.tx); err != nil {
		u.rolledBack++
		return err
	}
	u.committed++
	return nil
}

type fakeTx struct {
	slots         *mockSlotRepo
	bookings      *mockBookingRepo
	idempotency   *mockIdempotencyRepo
	notifications *mockNotificationRepo
	reads         *mockCommandReads
}

func (t *fakeTx) Slots() shared.SlotRepository                 { return t.slots }
func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return t.idempotency }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }

type mockSlotRepo struct{ mock.Mock }

func (m *mockSlotRepo) LockForUpdate(ctx context.Context, slotID int64) (slot.Locked, error) {
	args := m.Called(ctx, slotID)
	return args.Get(0).(slot.Locked), args.Error(1)
}

func (m *mockSlotRepo) Decrement(ctx context.Context, slotID int64, quantity int32) (int32, error) {
	args := m.Called(ctx, slotID, quantity)
	return args.Get(0).(int32), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, draft *booking.Draft, ref booking.Reference) (*booking.Booking, error) {
	args := m.Called(ctx, draft, ref)
	if b := args.Get(0); b != nil {
		return b.(*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIdempotencyRepo struct{ mock.Mock }

func (m *mockIdempotencyRepo) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, key, endpoint, requestHash, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyRepo) GetForUpdate(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	args := m.Called(ctx, key)
	if r := args.Get(0); r != nil {
		return r.(*shared.IdempotencyRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdempotencyRepo) ReclaimExpired(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	args := m.Called(ctx, key, endpoint, requestHash, expiresAt, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyRepo) Complete(ctx context.Context, key uuid.UUID, bookingID int64) error {
	return m.Called(ctx, key, bookingID).Error(0)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) CreateJob(ctx context.Context, job shared.NewNotificationJob) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockNotificationRepo) ClaimPending(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	args := m.Called(ctx, now, limit)
	if jobs := args.Get(0); jobs != nil {
		return jobs.([]shared.NotificationJob), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNotificationRepo) Reschedule(ctx context.Context, id uuid.UUID, status shared.JobStatus, lastError string, runAt time.Time) error {
	return m.Called(ctx, id, status, lastError, runAt).Error(0)
}

type mockCommandReads struct{ mock.Mock }

func (m *mockCommandReads) BookingByID(ctx context.Context, id int64) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedRefs struct {
	ref booking.Reference
	err error
}

func (f fixedRefs) Generate() (booking.Reference, error) {
	return f.ref, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
