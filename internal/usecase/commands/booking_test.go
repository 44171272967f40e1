//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/errs"
	"bookit/internal/testutil/builder"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testRef = booking.Reference("HUF1A2B3C4")

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	uow      *fakeUoW
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	s.uow = newFakeUoW()
	s.commands = commands.NewBookingCommands(
		s.uow,
		commands.NewSlotLedger(),
		fixedRefs{ref: testRef},
		clock.NewMockClock(s.now),
		discardLogger(),
	)
}

func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectReserve wires a slot with available spots and a successful decrement.
func (s *BookingCommandsTestSuite) expectReserve(available, quantity int32) {
	s.uow.tx.slots.On("LockForUpdate", mock.Anything, int64(1)).
		Return(slot.Locked{ID: 1, ExperienceID: 1, AvailableSpots: available}, nil)
	s.uow.tx.slots.On("Decrement", mock.Anything, int64(1), quantity).
		Return(available-quantity, nil)
}

func (s *BookingCommandsTestSuite) expectInsert(b *booking.Booking) {
	s.uow.tx.bookings.On("Create", mock.Anything, mock.Anything, testRef).Return(b, nil)
}

func (s *BookingCommandsTestSuite) expectOutbox() {
	s.uow.tx.notifications.On("CreateJob", mock.Anything, mock.Anything).Return(nil)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()

	s.Run("success: reserves spots, writes booking and outbox job in one transaction", func() {
		created := b.BuildDomain()
		s.expectReserve(5, 2)
		s.expectInsert(created)

		var job shared.NewNotificationJob
		s.uow.tx.notifications.On("CreateJob", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { job = args.Get(1).(shared.NewNotificationJob) }).
			Return(nil)

		res, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.Require().NoError(err)
		s.Equal(created, res.Booking)
		s.Equal(int32(3), res.AvailableAfter)
		s.False(res.IsReplayed)
		s.Equal(1, s.uow.committed)

		s.Equal(commands.EventKindBookingCreated, job.Kind)
		s.Equal(commands.EventTopicBookingCreated, job.Topic)
		s.Equal(testRef.String(), job.EventKey)
		s.Equal(s.now, job.RunAt)

		var event commands.BookingCreatedEvent
		s.Require().NoError(json.Unmarshal(job.Payload, &event))
		s.Equal(created.ID, event.BookingID)
		s.Equal("2116.00", event.Total)
		s.Equal(int32(3), event.AvailableAfter)

		s.uow.tx.idempotency.AssertNotCalled(s.T(), "TryInsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("validation error: rejected before any transaction starts", func() {
		input := b.BuildInput()
		input.CustomerEmail = "not-an-email"

		_, err := s.commands.CreateBooking(s.ctx, input, nil)
		s.Require().ErrorIs(err, booking.ErrInvalidEmail)
		s.Zero(s.uow.committed + s.uow.rolledBack)
	})

	s.Run("insufficient capacity: rolls back and reports remaining spots", func() {
		s.uow.tx.slots.On("LockForUpdate", mock.Anything, int64(1)).
			Return(slot.Locked{ID: 1, ExperienceID: 1, AvailableSpots: 1}, nil)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.True(errs.Is(err, errs.ErrInsufficientCapacity))
		available, ok := slot.AvailableFrom(err)
		s.True(ok)
		s.Equal(int32(1), available)
		s.Equal(1, s.uow.rolledBack)
		s.uow.tx.bookings.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("unknown experience on insert: rolls back the decrement", func() {
		s.expectReserve(5, 2)
		fkErr := infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23503"})
		s.uow.tx.bookings.On("Create", mock.Anything, mock.Anything, testRef).Return(nil, fkErr)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.True(errs.Is(err, errs.ErrExperienceNotFound))
		s.Equal(1, s.uow.rolledBack)
		s.Zero(s.uow.committed)
	})

	s.Run("outbox failure: whole booking rolls back", func() {
		s.expectReserve(5, 2)
		s.expectInsert(b.BuildDomain())
		s.uow.tx.notifications.On("CreateJob", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.Equal(1, s.uow.rolledBack)
	})

	s.Run("reference generation failure: rolls back", func() {
		s.commands = commands.NewBookingCommands(s.uow, commands.NewSlotLedger(),
			fixedRefs{err: errors.New("no entropy")}, clock.NewMockClock(s.now), discardLogger())
		s.expectReserve(5, 2)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.Require().Error(err)
		s.Equal(1, s.uow.rolledBack)
	})
}

// ================================================================================
// Promo code and discount
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBookingPromo() {
	s.Run("promo without discount: stored with zero discount and total as sent", func() {
		b := builder.NewBookingBuilder().WithPromo("save10", nil)
		s.expectReserve(5, 2)
		s.expectOutbox()
		s.uow.tx.bookings.On("Create", mock.Anything, mock.MatchedBy(func(d *booking.Draft) bool {
			p := d.Pricing()
			return p.Discount.String() == "0.00" &&
				p.Total.String() == "2116.00" &&
				d.PromoCode() != nil && *d.PromoCode() == "SAVE10"
		}), testRef).Return(b.BuildDomain(), nil)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.Require().NoError(err)
		s.uow.tx.bookings.AssertExpectations(s.T())
	})

	s.Run("client supplied discount: stored as sent", func() {
		discount := decimal.RequireFromString("50")
		b := builder.NewBookingBuilder().WithPromo("SAVE10", &discount)
		s.expectReserve(5, 2)
		s.expectOutbox()
		s.uow.tx.bookings.On("Create", mock.Anything, mock.MatchedBy(func(d *booking.Draft) bool {
			return d.Pricing().Discount.String() == "50.00"
		}), testRef).Return(b.BuildDomain(), nil)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.Require().NoError(err)
		s.uow.tx.bookings.AssertExpectations(s.T())
	})

	s.Run("negative discount: rejected before any transaction starts", func() {
		discount := decimal.RequireFromString("-10")
		b := builder.NewBookingBuilder().WithPromo("SAVE10", &discount)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), nil)
		s.Require().ErrorIs(err, booking.ErrInvalidPrice)
		s.Zero(s.uow.committed + s.uow.rolledBack)
	})
}

// ================================================================================
// Idempotency
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBookingIdempotency() {
	b := builder.NewBookingBuilder()
	key := uuid.New()

	s.Run("first use: claims the key and completes it with the booking id", func() {
		created := b.BuildDomain()
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, "POST /api/bookings", mock.AnythingOfType("string"), s.now.Add(24*time.Hour)).
			Return(true, nil)
		s.expectReserve(5, 2)
		s.expectInsert(created)
		s.expectOutbox()
		s.uow.tx.idempotency.On("Complete", mock.Anything, key, created.ID).Return(nil)

		res, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), &key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.uow.tx.idempotency.AssertExpectations(s.T())
	})

	s.Run("replay: same body returns the stored booking without reserving", func() {
		stored := b.BuildDomain()
		record := &shared.IdempotencyRecord{
			Key:             key,
			Endpoint:        "POST /api/bookings",
			ResultBookingID: &stored.ID,
			ExpiresAt:       s.now.Add(time.Hour),
		}
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { record.RequestHash = args.String(3) }).
			Return(false, nil)
		s.uow.tx.idempotency.On("GetForUpdate", mock.Anything, key).Return(record, nil)
		s.uow.tx.reads.On("BookingByID", mock.Anything, stored.ID).Return(stored, nil)

		res, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), &key)
		s.Require().NoError(err)
		s.True(res.IsReplayed)
		s.Equal(stored, res.Booking)
		s.uow.tx.slots.AssertNotCalled(s.T(), "LockForUpdate", mock.Anything, mock.Anything)
	})

	s.Run("replay: equivalent decimal spelling hashes the same", func() {
		var hashes []string
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { hashes = append(hashes, args.String(3)) }).
			Return(false, nil)
		s.uow.tx.idempotency.On("GetForUpdate", mock.Anything, key).
			Return(&shared.IdempotencyRecord{Endpoint: "POST /api/bookings", RequestHash: "other", ExpiresAt: s.now.Add(time.Hour)}, nil)

		input := b.BuildInput()
		_, _ = s.commands.CreateBooking(s.ctx, input, &key)
		input.Subtotal = decimal.RequireFromString("1998")
		_, _ = s.commands.CreateBooking(s.ctx, input, &key)

		s.Require().Len(hashes, 2)
		s.Equal(hashes[0], hashes[1])
	})

	s.Run("mismatch: different body under the same key is rejected", func() {
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		s.uow.tx.idempotency.On("GetForUpdate", mock.Anything, key).Return(&shared.IdempotencyRecord{
			Key:         key,
			Endpoint:    "POST /api/bookings",
			RequestHash: "hash-of-another-body",
			ExpiresAt:   s.now.Add(time.Hour),
		}, nil)

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), &key)
		s.True(errs.Is(err, errs.ErrIdempotencyKeyMismatch))
		s.Equal(1, s.uow.rolledBack)
	})

	s.Run("expired key: reclaimed and processed as new", func() {
		created := b.BuildDomain()
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		s.uow.tx.idempotency.On("GetForUpdate", mock.Anything, key).Return(&shared.IdempotencyRecord{
			Key:         key,
			Endpoint:    "POST /api/bookings",
			RequestHash: "old",
			ExpiresAt:   s.now.Add(-time.Minute),
		}, nil)
		s.uow.tx.idempotency.On("ReclaimExpired", mock.Anything, key, "POST /api/bookings", mock.Anything, s.now.Add(24*time.Hour), s.now).
			Return(true, nil)
		s.expectReserve(5, 2)
		s.expectInsert(created)
		s.expectOutbox()
		s.uow.tx.idempotency.On("Complete", mock.Anything, key, created.ID).Return(nil)

		res, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), &key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.uow.tx.idempotency.AssertExpectations(s.T())
	})

	s.Run("key claim failure surfaces as idempotency error", func() {
		s.uow.tx.idempotency.On("TryInsert", mock.Anything, key, mock.Anything, mock.Anything, mock.Anything).
			Return(false, errors.New("connection refused"))

		_, err := s.commands.CreateBooking(s.ctx, b.BuildInput(), &key)
		s.True(errs.Is(err, errs.ErrIdempotencyCheckFailed))
	})
}

func TestCreatedEventPayloadShape(t *testing.T) {
	created := builder.NewBookingBuilder().BuildDomain()
	uow := newFakeUoW()
	uow.tx.slots.On("LockForUpdate", mock.Anything, int64(1)).Return(slot.Locked{ID: 1, ExperienceID: 1, AvailableSpots: 2}, nil)
	uow.tx.slots.On("Decrement", mock.Anything, int64(1), int32(2)).Return(int32(0), nil)
	uow.tx.bookings.On("Create", mock.Anything, mock.Anything, testRef).Return(created, nil)

	var payload map[string]any
	uow.tx.notifications.On("CreateJob", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal(args.Get(1).(shared.NewNotificationJob).Payload, &payload))
		}).
		Return(nil)

	cmds := commands.NewBookingCommands(uow, commands.NewSlotLedger(), fixedRefs{ref: testRef},
		clock.NewMockClock(created.CreatedAt), discardLogger())

	_, err := cmds.CreateBooking(context.Background(), builder.NewBookingBuilder().BuildInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, "booking.created", payload["type"])
	assert.Equal(t, "HUF1A2B3C4", payload["booking_reference"])
	assert.Equal(t, float64(0), payload["available_after"])
	assert.Equal(t, "asha@example.com", payload["customer_email"])
}
