package commands

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/shared"
)

type ReserveRequest struct {
	SlotID int64
	// ExperienceID, when non-zero, must own the slot; a mismatch is reported as slot not found.
	ExperienceID int64
	Quantity     booking.Quantity
}

type ReserveResult struct {
	ExperienceID   int64
	AvailableAfter int32
}

// SlotLedger owns available_spots. The row lock taken by Reserve is released only when the
// enclosing transaction commits or rolls back, so same-slot reservations serialize.
type SlotLedger struct{}

func NewSlotLedger() *SlotLedger {
	return &SlotLedger{}
}

func (l *SlotLedger) Reserve(ctx context.Context, tx shared.Tx, req ReserveRequest) (ReserveResult, error) {
	locked, err := tx.Slots().LockForUpdate(ctx, req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ReserveResult{}, errs.ErrSlotNotFound
		}
		return ReserveResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if req.ExperienceID != 0 && !locked.BelongsTo(req.ExperienceID) {
		return ReserveResult{}, errs.ErrSlotNotFound
	}

	expected, err := locked.Reserve(req.Quantity.Int32())
	if err != nil {
		return ReserveResult{}, err
	}

	after, err := tx.Slots().Decrement(ctx, req.SlotID, req.Quantity.Int32())
	if err != nil {
		return ReserveResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if after != expected {
		// Only possible if something bypassed the row lock.
		return ReserveResult{}, errs.Mark(
			errs.Newf("slot %d availability drifted: expected %d, got %d", req.SlotID, expected, after),
			errs.ErrDatabaseOperationFailed,
		)
	}

	return ReserveResult{ExperienceID: locked.ExperienceID, AvailableAfter: after}, nil
}
