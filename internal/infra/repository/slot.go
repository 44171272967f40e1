package repository

import (
	"context"

	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"
)

type SlotWriteQueries interface {
	LockSlotForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.LockSlotForUpdateRow, error)
	DecrementSlotAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSlotAvailabilityParams) (int32, error)
}

// SlotRepository must be bound to a transaction: the lock it takes lives as long as db does.
type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) LockForUpdate(ctx context.Context, slotID int64) (slot.Locked, error) {
	row, err := r.queries.LockSlotForUpdate(ctx, r.db, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return slot.Locked{}, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return slot.Locked{}, infra.WrapRepoErr("failed to lock slot", err)
	}

	return slot.Locked{
		ID:             row.ID,
		ExperienceID:   row.ExperienceID,
		AvailableSpots: row.AvailableSpots,
	}, nil
}

func (r *SlotRepository) Decrement(ctx context.Context, slotID int64, quantity int32) (int32, error) {
	params := sqlc.DecrementSlotAvailabilityParams{
		ID:       slotID,
		Quantity: quantity,
	}

	available, err := r.queries.DecrementSlotAvailability(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement slot availability", err)
	}

	return available, nil
}
