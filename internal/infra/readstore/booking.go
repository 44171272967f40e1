package readstore

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/infra/repository/converter"
	"bookit/internal/infra/sqlc"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bookings, error)
	GetBookingByReference(ctx context.Context, db sqlc.DBTX, bookingReference string) (sqlc.GetBookingByReferenceRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingDetailView, error) {
	row, err := r.queries.GetBookingByReference(ctx, r.db, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by reference", err)
	}

	var view queries.BookingDetailView
	if err := copyRow(&view, &row.Bookings); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking row", err)
	}
	view.PromoCode = pgconv.StringPtrFromPgtype(row.PromoCode)
	view.ExperienceTitle = row.ExperienceTitle
	view.Date = row.Date
	view.Time = row.Time
	return &view, nil
}

// FindByID returns the stored booking as a domain value. Idempotent replays use it to
// return the booking created by the first request.
func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row), nil
}
