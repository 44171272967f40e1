package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/errs"
	"bookit/internal/pkg/ptr"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour

	EventKindBookingCreated  = "booking_created"
	EventTopicBookingCreated = "booking.created"
)

type CreateBookingResult struct {
	Booking        *booking.Booking
	AvailableAfter int32
	IsReplayed     bool
}

type BookingCommands interface {
	// CreateBooking validates input, then reserves capacity and writes the booking in one
	// transaction. A nil idempotencyKey disables replay protection.
	CreateBooking(ctx context.Context, input CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
}

// BookingCreatedEvent is the outbox payload published after commit.
type BookingCreatedEvent struct {
	Type             string    `json:"type"`
	BookingID        int64     `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	ExperienceID     int64     `json:"experience_id"`
	SlotID           int64     `json:"slot_id"`
	Quantity         int32     `json:"quantity"`
	Total            string    `json:"total"`
	CustomerEmail    string    `json:"customer_email"`
	AvailableAfter   int32     `json:"available_after"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger *SlotLedger
	refs   booking.ReferenceGenerator
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger *SlotLedger,
	refs booking.ReferenceGenerator,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		ledger: ledger,
		refs:   refs,
		clock:  clock,
		logger: logger,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	draft, err := booking.NewDraft(booking.DraftSpec{
		ExperienceID:  input.ExperienceID,
		SlotID:        input.SlotID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Quantity:      input.Quantity,
		Subtotal:      input.Subtotal,
		Taxes:         input.Taxes,
		Total:         input.Total,
		Discount:      ptr.Coalesce(input.Discount, decimal.Zero),
		PromoCode:     input.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	var requestHash string
	if idempotencyKey != nil {
		requestHash = calculateRequestHash(input)
	}

	var result *CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != nil {
			replayed, claimErr := c.claimIdempotencyKey(ctx, tx, *idempotencyKey, requestHash)
			if claimErr != nil {
				return claimErr
			}
			if replayed != nil {
				result = &CreateBookingResult{Booking: replayed, IsReplayed: true}
				return nil
			}
		}

		created, availableAfter, txErr := c.issue(ctx, tx, draft)
		if txErr != nil {
			return txErr
		}

		if idempotencyKey != nil {
			if txErr = tx.Idempotency().Complete(ctx, *idempotencyKey, created.ID); txErr != nil {
				return errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CreateBookingResult{Booking: created, AvailableAfter: availableAfter}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		c.logger.InfoContext(ctx, "booking created",
			slog.String("booking_reference", result.Booking.BookingReference.String()),
			slog.Int64("slot_id", result.Booking.SlotID),
			slog.Int("quantity", int(result.Booking.Quantity)),
			slog.Int("available_after", int(result.AvailableAfter)),
		)
	}

	return result, nil
}

// issue runs ledger reserve, reference generation, booking insert and outbox insert.
// Any error aborts the enclosing transaction, undoing the decrement.
func (c *bookingCommandsImpl) issue(ctx context.Context, tx shared.Tx, draft *booking.Draft) (*booking.Booking, int32, error) {
	reserved, err := c.ledger.Reserve(ctx, tx, ReserveRequest{
		SlotID:       draft.SlotID(),
		ExperienceID: draft.ExperienceID(),
		Quantity:     draft.Quantity(),
	})
	if err != nil {
		return nil, 0, err
	}

	ref, err := c.refs.Generate()
	if err != nil {
		return nil, 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	created, err := tx.Bookings().Create(ctx, draft, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, 0, errs.Mark(err, errs.ErrExperienceNotFound)
		}
		return nil, 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.enqueueBookingCreated(ctx, tx, created, reserved.AvailableAfter); err != nil {
		return nil, 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return created, reserved.AvailableAfter, nil
}

// claimIdempotencyKey returns the previously created booking when the key was already used
// for the same request. The key row stays locked until the transaction ends.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key uuid.UUID, requestHash string) (*booking.Booking, error) {
	now := c.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, createBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().GetForUpdate(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.ExpiredAt(now) {
		if _, err := tx.Idempotency().ReclaimExpired(ctx, key, createBookingEndpoint, requestHash, expiresAt, now); err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		return nil, nil
	}

	if existing.Endpoint != createBookingEndpoint || existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyMismatch
	}

	if existing.ResultBookingID == nil {
		return nil, errs.Mark(errs.New("committed idempotency key has no booking"), errs.ErrIdempotencyCheckFailed)
	}

	prev, err := tx.Reads().BookingByID(ctx, *existing.ResultBookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	return prev, nil
}

func (c *bookingCommandsImpl) enqueueBookingCreated(ctx context.Context, tx shared.Tx, b *booking.Booking, availableAfter int32) error {
	payload, err := json.Marshal(BookingCreatedEvent{
		Type:             EventTopicBookingCreated,
		BookingID:        b.ID,
		BookingReference: b.BookingReference.String(),
		ExperienceID:     b.ExperienceID,
		SlotID:           b.SlotID,
		Quantity:         b.Quantity,
		Total:            b.Total.StringFixed(2),
		CustomerEmail:    b.CustomerEmail,
		AvailableAfter:   availableAfter,
		OccurredAt:       b.CreatedAt,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking created event")
	}

	return tx.Notifications().CreateJob(ctx, shared.NewNotificationJob{
		ID:       uuid.New(),
		Kind:     EventKindBookingCreated,
		Topic:    EventTopicBookingCreated,
		EventKey: b.BookingReference.String(),
		Payload:  payload,
		RunAt:    c.clock.Now(),
	})
}

// calculateRequestHash fingerprints the request body. Decimals hash by their fixed two-place
// string so 100 and 100.00 count as the same request.
func calculateRequestHash(input CreateBookingInput) string {
	type hashed struct {
		ExperienceID  int64   `json:"experience_id"`
		SlotID        int64   `json:"slot_id"`
		CustomerName  string  `json:"customer_name"`
		CustomerEmail string  `json:"customer_email"`
		Quantity      int     `json:"quantity"`
		Subtotal      string  `json:"subtotal"`
		Taxes         string  `json:"taxes"`
		Total         string  `json:"total"`
		PromoCode     *string `json:"promo_code"`
		Discount      *string `json:"discount"`
	}
	h := hashed{
		ExperienceID:  input.ExperienceID,
		SlotID:        input.SlotID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Quantity:      input.Quantity,
		Subtotal:      input.Subtotal.StringFixed(2),
		Taxes:         input.Taxes.StringFixed(2),
		Total:         input.Total.StringFixed(2),
		PromoCode:     input.PromoCode,
	}
	if input.Discount != nil {
		h.Discount = ptr.Of(input.Discount.StringFixed(2))
	}

	data, _ := json.Marshal(h)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
