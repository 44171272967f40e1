package queries

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByReference(ctx context.Context, reference string) (*BookingDetailView, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingDetailView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByReference matches references case-insensitively. Malformed references are reported as not found.
func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingDetailView, error) {
	ref, err := booking.ParseReference(reference)
	if err != nil {
		return nil, errs.ErrBookingNotFound
	}

	view, err := q.store.FindByReference(ctx, ref.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
